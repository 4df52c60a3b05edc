package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/metrics"
)

// CreateShipmentCommandHandler admits new shipments. References are resolved
// against the vehicle and customer registries of the same unit of work.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	format     kernel.IdentifierFormat
	observer   observer
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	format kernel.IdentifierFormat,
	logger *slog.Logger,
	m *metrics.Metrics,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		format:     format,
		observer:   newObserver("create_shipment_handler", logger, m),
	}
}

// Handle admits the shipment in transit or returns the first violated rule:
// duplicate identifier, identifier format, origin, destination, weight, then
// the vehicle and customer references. The returned shipment is a snapshot taken
// before the unit of work ends; later deliveries do not change it.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolver := services.NewReferenceResolver(uow.VehicleRegistry(), uow.CustomerRegistry())
	admitted, err := uow.ShipmentRegistry().Add(shipment.NewCandidate(h.format, resolver, cmd.Fields()))
	if err != nil {
		h.observer.rejected(ctx, shipment.Kind, cmd.ID(), err)
		return nil, err
	}

	created := admitted.Snapshot()
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.admitted(ctx, shipment.Kind, created.ID())
	return created, nil
}
