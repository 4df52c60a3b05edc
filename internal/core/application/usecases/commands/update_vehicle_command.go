package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand asks to replace the type and capacity of a registered vehicle.
type UpdateVehicleCommand struct {
	id          string
	vehicleType string
	capacity    string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command from raw vehicle values.
func NewUpdateVehicleCommand(id, vehicleType, capacity string) UpdateVehicleCommand {
	return UpdateVehicleCommand{
		id:          id,
		vehicleType: vehicleType,
		capacity:    capacity,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// ID returns the identifier of the vehicle to update.
func (c UpdateVehicleCommand) ID() string {
	return c.id
}

// VehicleType returns the raw vehicle type.
func (c UpdateVehicleCommand) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the raw capacity.
func (c UpdateVehicleCommand) Capacity() string {
	return c.capacity
}
