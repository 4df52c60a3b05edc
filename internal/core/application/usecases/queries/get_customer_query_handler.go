package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetCustomerQueryHandler finds customers by identifier.
type GetCustomerQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomerQueryHandler creates the handler.
func NewGetCustomerQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{uowFactory: uowFactory}
}

// Handle returns the record or ObjectNotFoundError.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var response CustomerResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		record, err := uow.CustomerRegistry().Find(query.ID())
		if err != nil {
			return err
		}
		response = NewCustomerResponse(record)
		return nil
	})
	if err != nil {
		return CustomerResponse{}, err
	}

	return response, nil
}
