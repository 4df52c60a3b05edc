package commands

import (
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand asks to register a new shipment between a registered
// vehicle and customer.
//
// Example:
//
//	cmd := NewCreateShipmentCommand(shipment.Fields{
//	    ID:          "S001",
//	    Origin:      "Sydney",
//	    Destination: "Melbourne",
//	    Weight:      "100",
//	    VehicleID:   "V001",
//	    CustomerID:  "C001",
//	})
//	s, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrUnresolvedReference) {
//	    // the vehicle or customer is not registered
//	}
type CreateShipmentCommand struct {
	fields shipment.Fields

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command from raw shipment values.
func NewCreateShipmentCommand(fields shipment.Fields) CreateShipmentCommand {
	return CreateShipmentCommand{fields: fields, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ID returns the shipment identifier.
func (c CreateShipmentCommand) ID() string {
	return c.fields.ID
}

// Fields returns the raw shipment values.
func (c CreateShipmentCommand) Fields() shipment.Fields {
	return c.fields
}
