package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRemoveVehicleCommandIsNotConstructed = errors.New(
	"RemoveVehicleCommand must be created via NewRemoveVehicleCommand constructor",
)

// RemoveVehicleCommand asks to delete a vehicle. Shipments referencing it are kept
// and their vehicle reference becomes dangling.
type RemoveVehicleCommand struct {
	id string

	guard guard.ConstructorGuard
}

// NewRemoveVehicleCommand creates a removal command. id must not be empty.
func NewRemoveVehicleCommand(id string) (RemoveVehicleCommand, error) {
	if id == "" {
		return RemoveVehicleCommand{}, ErrIDIsRequired
	}
	return RemoveVehicleCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveVehicleCommandIsNotConstructed)
}

// ID returns the identifier of the vehicle to remove.
func (c RemoveVehicleCommand) ID() string {
	return c.id
}
