package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetVehicleQueryHandler finds vehicles by identifier.
type GetVehicleQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetVehicleQueryHandler creates the handler.
func NewGetVehicleQueryHandler(uowFactory ports.UnitOfWorkFactory) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{uowFactory: uowFactory}
}

// Handle returns the record or ObjectNotFoundError.
func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	var response VehicleResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		record, err := uow.VehicleRegistry().Find(query.ID())
		if err != nil {
			return err
		}
		response = NewVehicleResponse(record)
		return nil
	})
	if err != nil {
		return VehicleResponse{}, err
	}

	return response, nil
}
