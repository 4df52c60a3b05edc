package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetCustomerShipmentsQueryIsNotConstructed = errors.New(
	"GetCustomerShipmentsQuery must be created via NewGetCustomerShipmentsQuery constructor",
)

// GetCustomerShipmentsQuery lists the shipments of one registered customer in
// registration order. Unlike shipment admission, it requires the customer to exist
// now, so shipments of a removed customer are only reachable through the full list.
type GetCustomerShipmentsQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetCustomerShipmentsQuery creates the query. id must not be empty.
func NewGetCustomerShipmentsQuery(id string) (GetCustomerShipmentsQuery, error) {
	if id == "" {
		return GetCustomerShipmentsQuery{}, ErrIDIsRequired
	}
	return GetCustomerShipmentsQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerShipmentsQueryIsNotConstructed)
}

// ID returns the requested customer identifier.
func (q GetCustomerShipmentsQuery) ID() string {
	return q.id
}
