package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/metrics"
)

// UpdateCustomerCommandHandler replaces registered customers.
// The clock decides the age check.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	format     kernel.IdentifierFormat
	clock      kernel.Clock
	observer   observer
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	format kernel.IdentifierFormat,
	clock kernel.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		format:     format,
		clock:      clock,
		observer:   newObserver("update_customer_handler", logger, m),
	}
}

// Handle validates the new details and replaces the customer in place.
// The customer must already exist; nothing changes on failure.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.CustomerRegistry().Update(customer.NewCandidate(h.format, h.clock, cmd.Fields()))
	if err != nil {
		h.observer.rejected(ctx, customer.Kind, cmd.ID(), err)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.admitted(ctx, customer.Kind, updated.ID())
	return updated, nil
}
