package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/metrics"
)

// UpdateVehicleCommandHandler replaces registered vehicles.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	format     kernel.IdentifierFormat
	observer   observer
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	format kernel.IdentifierFormat,
	logger *slog.Logger,
	m *metrics.Metrics,
) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
		format:     format,
		observer:   newObserver("update_vehicle_handler", logger, m),
	}
}

// Handle validates the new values and replaces the vehicle in place.
// The vehicle must already exist; nothing changes on failure.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) (*vehicle.Vehicle, error) {
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

	candidate := vehicle.NewCandidate(h.format, cmd.ID(), cmd.VehicleType(), cmd.Capacity())
	updated, err := uow.VehicleRegistry().Update(candidate)
	if err != nil {
		h.observer.rejected(ctx, vehicle.Kind, cmd.ID(), err)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.admitted(ctx, vehicle.Kind, updated.ID())
	return updated, nil
}
