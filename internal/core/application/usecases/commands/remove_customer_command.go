package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRemoveCustomerCommandIsNotConstructed = errors.New(
	"RemoveCustomerCommand must be created via NewRemoveCustomerCommand constructor",
)

// RemoveCustomerCommand asks to delete a customer. Shipments referencing it are kept
// and their customer reference becomes dangling.
type RemoveCustomerCommand struct {
	id string

	guard guard.ConstructorGuard
}

// NewRemoveCustomerCommand creates a removal command. id must not be empty.
func NewRemoveCustomerCommand(id string) (RemoveCustomerCommand, error) {
	if id == "" {
		return RemoveCustomerCommand{}, ErrIDIsRequired
	}
	return RemoveCustomerCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomerCommandIsNotConstructed)
}

// ID returns the identifier of the customer to remove.
func (c RemoveCustomerCommand) ID() string {
	return c.id
}
