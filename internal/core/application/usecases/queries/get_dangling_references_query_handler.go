package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// DanglingReferenceResponse names a shipment field pointing at a removed record.
type DanglingReferenceResponse struct {
	ShipmentID string
	Field      string
	TargetID   string
}

// DanglingReferencesResponse is the audit result together with the registry sizes
// it was computed from.
type DanglingReferencesResponse struct {
	Vehicles   int
	Customers  int
	Shipments  int
	References []DanglingReferenceResponse
}

// GetDanglingReferencesQueryHandler audits shipment references.
type GetDanglingReferencesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetDanglingReferencesQueryHandler creates the handler.
func NewGetDanglingReferencesQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDanglingReferencesQueryHandler {
	return GetDanglingReferencesQueryHandler{uowFactory: uowFactory}
}

// Handle lists dangling references in shipment order.
func (h GetDanglingReferencesQueryHandler) Handle(
	ctx context.Context,
	query GetDanglingReferencesQuery,
) (DanglingReferencesResponse, error) {
	if err := query.Validate(); err != nil {
		return DanglingReferencesResponse{}, err
	}

	var response DanglingReferencesResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		vehicles := uow.VehicleRegistry().List()
		customers := uow.CustomerRegistry().List()
		shipments := uow.ShipmentRegistry().List()

		response = DanglingReferencesResponse{
			Vehicles:  len(vehicles),
			Customers: len(customers),
			Shipments: len(shipments),
			References: mapAll(
				services.FindDanglingReferences(shipments, vehicles, customers),
				func(d services.DanglingReference) DanglingReferenceResponse {
					return DanglingReferenceResponse(d)
				},
			),
		}
		return nil
	})
	if err != nil {
		return DanglingReferencesResponse{}, err
	}

	return response, nil
}
