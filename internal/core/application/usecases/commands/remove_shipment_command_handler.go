package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/metrics"
)

// RemoveShipmentCommandHandler deletes shipments from the registry.
type RemoveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	observer   observer
}

// NewRemoveShipmentCommandHandler creates a handler for shipment removal.
func NewRemoveShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	logger *slog.Logger,
	m *metrics.Metrics,
) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{
		uowFactory: uowFactory,
		observer:   newObserver("remove_shipment_handler", logger, m),
	}
}

// Handle removes the shipment or returns ObjectNotFoundError.
func (h *RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRegistry().Remove(cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.removed(ctx, shipment.Kind, cmd.ID())
	return nil
}
