package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery retrieves the delivery status of one shipment.
// DeliveredAt in the response is set only once the shipment is delivered.
type GetShipmentStatusQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates the query. id must not be empty.
func NewGetShipmentStatusQuery(id string) (GetShipmentStatusQuery, error) {
	if id == "" {
		return GetShipmentStatusQuery{}, ErrIDIsRequired
	}
	return GetShipmentStatusQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// ID returns the requested shipment identifier.
func (q GetShipmentStatusQuery) ID() string {
	return q.id
}
