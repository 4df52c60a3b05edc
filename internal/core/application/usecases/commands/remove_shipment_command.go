package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRemoveShipmentCommandIsNotConstructed = errors.New(
	"RemoveShipmentCommand must be created via NewRemoveShipmentCommand constructor",
)

// RemoveShipmentCommand asks to delete a shipment record.
type RemoveShipmentCommand struct {
	id string

	guard guard.ConstructorGuard
}

// NewRemoveShipmentCommand creates a removal command. id must not be empty.
func NewRemoveShipmentCommand(id string) (RemoveShipmentCommand, error) {
	if id == "" {
		return RemoveShipmentCommand{}, ErrIDIsRequired
	}
	return RemoveShipmentCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentCommandIsNotConstructed)
}

// ID returns the identifier of the shipment to remove.
func (c RemoveShipmentCommand) ID() string {
	return c.id
}
