package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer by identifier.
type GetCustomerQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates the query. id must not be empty.
func NewGetCustomerQuery(id string) (GetCustomerQuery, error) {
	if id == "" {
		return GetCustomerQuery{}, ErrIDIsRequired
	}
	return GetCustomerQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ID returns the requested customer identifier.
func (q GetCustomerQuery) ID() string {
	return q.id
}
