package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllCustomersQueryHandler lists customer records in insertion order.
type GetAllCustomersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetAllCustomersQueryHandler creates a handler for listing customer records.
func NewGetAllCustomersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{uowFactory: uowFactory}
}

// Handle returns every record. The result is empty, never nil, for an empty registry.
func (h GetAllCustomersQueryHandler) Handle(ctx context.Context, query GetAllCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response []CustomerResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		response = mapAll(uow.CustomerRegistry().List(), NewCustomerResponse)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
