package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment by identifier.
type GetShipmentQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates the query. id must not be empty.
func NewGetShipmentQuery(id string) (GetShipmentQuery, error) {
	if id == "" {
		return GetShipmentQuery{}, ErrIDIsRequired
	}
	return GetShipmentQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ID returns the requested shipment identifier.
func (q GetShipmentQuery) ID() string {
	return q.id
}
