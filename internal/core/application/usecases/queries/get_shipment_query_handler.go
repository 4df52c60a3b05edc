package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetShipmentQueryHandler finds shipments by identifier.
type GetShipmentQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetShipmentQueryHandler creates the handler.
func NewGetShipmentQueryHandler(uowFactory ports.UnitOfWorkFactory) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{uowFactory: uowFactory}
}

// Handle returns the record or ObjectNotFoundError.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	var response ShipmentResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		record, err := uow.ShipmentRegistry().Find(query.ID())
		if err != nil {
			return err
		}
		response = NewShipmentResponse(record)
		return nil
	})
	if err != nil {
		return ShipmentResponse{}, err
	}

	return response, nil
}
