package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetCustomerShipmentsQueryHandler lists shipments by customer.
type GetCustomerShipmentsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomerShipmentsQueryHandler creates the handler.
func NewGetCustomerShipmentsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerShipmentsQueryHandler {
	return GetCustomerShipmentsQueryHandler{uowFactory: uowFactory}
}

// Handle returns ObjectNotFoundError when the customer is not registered.
func (h GetCustomerShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response []ShipmentResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		if _, err := uow.CustomerRegistry().Find(query.ID()); err != nil {
			return err
		}

		response = make([]ShipmentResponse, 0)
		for _, s := range uow.ShipmentRegistry().List() {
			if s.CustomerID() == query.ID() {
				response = append(response, NewShipmentResponse(s))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
