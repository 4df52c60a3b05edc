package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/metrics"
)

// AddCustomerCommandHandler admits new customers into the customer registry.
// The clock decides the age check.
type AddCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	format     kernel.IdentifierFormat
	clock      kernel.Clock
	observer   observer
}

// NewAddCustomerCommandHandler creates a handler for customer registration.
func NewAddCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	format kernel.IdentifierFormat,
	clock kernel.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) AddCustomerCommandHandler {
	return AddCustomerCommandHandler{
		uowFactory: uowFactory,
		format:     format,
		clock:      clock,
		observer:   newObserver("add_customer_handler", logger, m),
	}
}

// Handle admits the customer or returns the first violated rule.
func (h *AddCustomerCommandHandler) Handle(ctx context.Context, cmd AddCustomerCommand) (*customer.Customer, error) {
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

	admitted, err := uow.CustomerRegistry().Add(customer.NewCandidate(h.format, h.clock, cmd.Fields()))
	if err != nil {
		h.observer.rejected(ctx, customer.Kind, cmd.ID(), err)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.admitted(ctx, customer.Kind, admitted.ID())
	return admitted, nil
}
