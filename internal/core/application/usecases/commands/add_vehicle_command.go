package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand asks to register a new vehicle.
// Values are kept as entered; the vehicle registry checks uniqueness first and
// only then validates the format and fields.
//
// Example:
//
//	cmd := NewAddVehicleCommand("V001", "Truck", "500")
//	handler := NewAddVehicleCommandHandler(uowFactory, format, logger, m)
//
//	v, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("vehicle rejected: %w", err)
//	}
type AddVehicleCommand struct {
	id          string
	vehicleType string
	capacity    string

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a command from raw vehicle values.
func NewAddVehicleCommand(id, vehicleType, capacity string) AddVehicleCommand {
	return AddVehicleCommand{
		id:          id,
		vehicleType: vehicleType,
		capacity:    capacity,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// ID returns the requested vehicle identifier.
func (c AddVehicleCommand) ID() string {
	return c.id
}

// VehicleType returns the raw vehicle type.
func (c AddVehicleCommand) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the raw capacity.
func (c AddVehicleCommand) Capacity() string {
	return c.capacity
}
