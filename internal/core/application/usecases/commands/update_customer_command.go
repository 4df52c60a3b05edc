package commands

import (
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand asks to replace the details of a registered customer.
type UpdateCustomerCommand struct {
	fields customer.Fields

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command from raw customer values.
func NewUpdateCustomerCommand(fields customer.Fields) UpdateCustomerCommand {
	return UpdateCustomerCommand{fields: fields, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// ID returns the customer identifier.
func (c UpdateCustomerCommand) ID() string {
	return c.fields.ID
}

// Fields returns the raw customer values.
func (c UpdateCustomerCommand) Fields() customer.Fields {
	return c.fields
}
