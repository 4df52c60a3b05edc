package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/pkg/metrics"
)

// RemoveCustomerCommandHandler deletes customers from the registry.
type RemoveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	observer   observer
}

// NewRemoveCustomerCommandHandler creates a handler for customer removal.
func NewRemoveCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	logger *slog.Logger,
	m *metrics.Metrics,
) RemoveCustomerCommandHandler {
	return RemoveCustomerCommandHandler{
		uowFactory: uowFactory,
		observer:   newObserver("remove_customer_handler", logger, m),
	}
}

// Handle removes the customer or returns ObjectNotFoundError.
func (h *RemoveCustomerCommandHandler) Handle(ctx context.Context, cmd RemoveCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CustomerRegistry().Remove(cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.removed(ctx, customer.Kind, cmd.ID())
	return nil
}
