package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"
)

// MarkShipmentDeliveredCommandHandler moves shipments to Delivered.
type MarkShipmentDeliveredCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
	observer   observer
}

// NewMarkShipmentDeliveredCommandHandler creates a delivery handler.
// The clock supplies the delivery time; nil means the system clock.
func NewMarkShipmentDeliveredCommandHandler(
	uowFactory ShipmentUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) MarkShipmentDeliveredCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return MarkShipmentDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		observer:   newObserver("mark_shipment_delivered_handler", logger, m),
	}
}

// Handle reports FirstTimeDelivered when the shipment was in transit and
// AlreadyDelivered when it was not; neither is an error. An unknown identifier
// yields NotFound together with the ObjectNotFoundError.
func (h *MarkShipmentDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkShipmentDeliveredCommand,
) (shipment.DeliveryOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRegistry().Find(cmd.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.delivery(ctx, cmd.ID(), shipment.NotFound)
		return shipment.NotFound, err
	}
	if err != nil {
		return 0, err
	}

	outcome, err := s.MarkDelivered(h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.delivery(ctx, cmd.ID(), outcome)
	return outcome, nil
}

func (h *MarkShipmentDeliveredCommandHandler) delivery(ctx context.Context, id string, outcome shipment.DeliveryOutcome) {
	h.observer.logger.InfoContext(ctx, "Delivery requested", "id", id, "outcome", outcome.String())
	h.observer.metrics.IncrementDelivery(outcome.String())
}
