package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves one vehicle by identifier.
type GetVehicleQuery struct {
	id string

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates the query. id must not be empty.
func NewGetVehicleQuery(id string) (GetVehicleQuery, error) {
	if id == "" {
		return GetVehicleQuery{}, ErrIDIsRequired
	}
	return GetVehicleQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// ID returns the requested vehicle identifier.
func (q GetVehicleQuery) ID() string {
	return q.id
}
