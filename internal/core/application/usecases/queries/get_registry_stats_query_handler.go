package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// RegistryStatsResponse summarizes the registries.
//
// The Next* identifiers follow the record count (count+1, three digits). They are
// hints only: after a removal the suggestion can collide with an existing record,
// which the registry then rejects as a duplicate.
type RegistryStatsResponse struct {
	Vehicles  int
	Customers int
	Shipments int
	InTransit int
	Delivered int

	NextVehicleID  string
	NextCustomerID string
	NextShipmentID string
}

// GetRegistryStatsQueryHandler computes RegistryStatsResponse.
type GetRegistryStatsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	formats    kernel.IdentifierFormats
}

// NewGetRegistryStatsQueryHandler creates the handler. formats produce the
// suggested identifiers.
func NewGetRegistryStatsQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	formats kernel.IdentifierFormats,
) GetRegistryStatsQueryHandler {
	return GetRegistryStatsQueryHandler{uowFactory: uowFactory, formats: formats}
}

// Handle counts records per registry and shipments per status.
func (h GetRegistryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetRegistryStatsQuery,
) (RegistryStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return RegistryStatsResponse{}, err
	}

	var stats RegistryStatsResponse
	err := read(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		stats.Vehicles = uow.VehicleRegistry().Count()
		stats.Customers = uow.CustomerRegistry().Count()
		stats.Shipments = uow.ShipmentRegistry().Count()

		for _, s := range uow.ShipmentRegistry().List() {
			if s.Status().IsDelivered() {
				stats.Delivered++
			} else {
				stats.InTransit++
			}
		}
		return nil
	})
	if err != nil {
		return RegistryStatsResponse{}, err
	}

	stats.NextVehicleID = h.formats.Vehicle.Suggest(stats.Vehicles)
	stats.NextCustomerID = h.formats.Customer.Suggest(stats.Customers)
	stats.NextShipmentID = h.formats.Shipment.Suggest(stats.Shipments)
	return stats, nil
}
