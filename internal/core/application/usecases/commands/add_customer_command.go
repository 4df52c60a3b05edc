package commands

import (
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/pkg/guard"
)

var ErrAddCustomerCommandIsNotConstructed = errors.New(
	"AddCustomerCommand must be created via NewAddCustomerCommand constructor",
)

// AddCustomerCommand asks to register a new customer.
// Values are kept as entered and validated by the customer registry, uniqueness first.
//
// Example:
//
//	cmd := NewAddCustomerCommand(customer.Fields{
//	    ID:          "C001",
//	    Name:        "John Smith",
//	    DateOfBirth: "01/01/1990",
//	    Address:     "123 Main St, Sydney, NSW 2000, Australia",
//	    Phone:       "0412 345 678",
//	    Email:       "john@example.com",
//	})
//	c, err := handler.Handle(ctx, cmd)
type AddCustomerCommand struct {
	fields customer.Fields

	guard guard.ConstructorGuard
}

// NewAddCustomerCommand creates a command from raw customer values.
func NewAddCustomerCommand(fields customer.Fields) AddCustomerCommand {
	return AddCustomerCommand{fields: fields, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AddCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerCommandIsNotConstructed)
}

// ID returns the customer identifier.
func (c AddCustomerCommand) ID() string {
	return c.fields.ID
}

// Fields returns the raw customer values.
func (c AddCustomerCommand) Fields() customer.Fields {
	return c.fields
}
