package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves every registered vehicle.
//
// Example:
//
//	query := NewGetAllVehiclesQuery()
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, v := range vehicles {
//	    fmt.Println(v.ID, v.Type, v.Capacity)
//	}
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a parameterless list query.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}
