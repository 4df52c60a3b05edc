package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllVehiclesQueryHandler lists vehicle records in insertion order.
type GetAllVehiclesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetAllVehiclesQueryHandler creates a handler for listing vehicle records.
func NewGetAllVehiclesQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{uowFactory: uowFactory}
}

// Handle returns every record. The result is empty, never nil, for an empty registry.
func (h GetAllVehiclesQueryHandler) Handle(ctx context.Context, query GetAllVehiclesQuery) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response []VehicleResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		response = mapAll(uow.VehicleRegistry().List(), NewVehicleResponse)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
