package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllShipmentsQueryHandler lists shipment records in insertion order.
type GetAllShipmentsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetAllShipmentsQueryHandler creates a handler for listing shipment records.
func NewGetAllShipmentsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{uowFactory: uowFactory}
}

// Handle returns every record. The result is empty, never nil, for an empty registry.
func (h GetAllShipmentsQueryHandler) Handle(ctx context.Context, query GetAllShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response []ShipmentResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		response = mapAll(uow.ShipmentRegistry().List(), NewShipmentResponse)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
