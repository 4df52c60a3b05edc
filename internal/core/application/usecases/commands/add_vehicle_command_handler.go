package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/metrics"
)

// AddVehicleCommandHandler admits new vehicles into the vehicle registry.
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	format     kernel.IdentifierFormat
	observer   observer
}

// NewAddVehicleCommandHandler creates a handler for vehicle registration.
// logger and m may be nil.
func NewAddVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	format kernel.IdentifierFormat,
	logger *slog.Logger,
	m *metrics.Metrics,
) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
		format:     format,
		observer:   newObserver("add_vehicle_handler", logger, m),
	}
}

// Handle admits the vehicle or returns the first violated rule.
func (h *AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) (*vehicle.Vehicle, error) {
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
	admitted, err := uow.VehicleRegistry().Add(candidate)
	if err != nil {
		h.observer.rejected(ctx, vehicle.Kind, cmd.ID(), err)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.admitted(ctx, vehicle.Kind, admitted.ID())
	return admitted, nil
}
