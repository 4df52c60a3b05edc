package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/metrics"
)

// RemoveVehicleCommandHandler deletes vehicles from the registry.
type RemoveVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	observer   observer
}

// NewRemoveVehicleCommandHandler creates a handler for vehicle removal.
func NewRemoveVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	logger *slog.Logger,
	m *metrics.Metrics,
) RemoveVehicleCommandHandler {
	return RemoveVehicleCommandHandler{
		uowFactory: uowFactory,
		observer:   newObserver("remove_vehicle_handler", logger, m),
	}
}

// Handle removes the vehicle or returns ObjectNotFoundError.
func (h *RemoveVehicleCommandHandler) Handle(ctx context.Context, cmd RemoveVehicleCommand) error {
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

	if err := uow.VehicleRegistry().Remove(cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.removed(ctx, vehicle.Kind, cmd.ID())
	return nil
}
