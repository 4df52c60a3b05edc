package queries

import (
	"context"
	"time"

	"logistics/internal/core/ports"
)

// ShipmentStatusResponse carries the delivery state of one shipment.
type ShipmentStatusResponse struct {
	ID          string
	Status      string
	DeliveredAt *time.Time
}

// GetShipmentStatusQueryHandler reports shipment delivery states.
type GetShipmentStatusQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetShipmentStatusQueryHandler creates the handler.
func NewGetShipmentStatusQueryHandler(uowFactory ports.UnitOfWorkFactory) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{uowFactory: uowFactory}
}

// Handle returns the status, "In Transit" or "Delivered", or ObjectNotFoundError.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (ShipmentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentStatusResponse{}, err
	}

	var response ShipmentStatusResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		s, err := uow.ShipmentRegistry().Find(query.ID())
		if err != nil {
			return err
		}
		response = ShipmentStatusResponse{
			ID:          s.ID(),
			Status:      s.Status().String(),
			DeliveredAt: deliveredAt(s),
		}
		return nil
	})
	if err != nil {
		return ShipmentStatusResponse{}, err
	}

	return response, nil
}
