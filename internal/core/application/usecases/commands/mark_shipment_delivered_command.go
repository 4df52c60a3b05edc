package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrMarkShipmentDeliveredCommandIsNotConstructed = errors.New(
	"MarkShipmentDeliveredCommand must be created via NewMarkShipmentDeliveredCommand constructor",
)

// MarkShipmentDeliveredCommand asks to record the delivery of a shipment.
// Repeating the command is safe: a delivered shipment stays as it is.
type MarkShipmentDeliveredCommand struct {
	id string

	guard guard.ConstructorGuard
}

// NewMarkShipmentDeliveredCommand creates a delivery command. id must not be empty.
func NewMarkShipmentDeliveredCommand(id string) (MarkShipmentDeliveredCommand, error) {
	if id == "" {
		return MarkShipmentDeliveredCommand{}, ErrIDIsRequired
	}
	return MarkShipmentDeliveredCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShipmentDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentDeliveredCommandIsNotConstructed)
}

// ID returns the shipment identifier.
func (c MarkShipmentDeliveredCommand) ID() string {
	return c.id
}
