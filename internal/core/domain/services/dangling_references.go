package services

import (
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// DanglingReference is a shipment reference whose target has been removed.
type DanglingReference struct {
	ShipmentID string
	Field      string
	TargetID   string
}

// FindDanglingReferences lists, in shipment order, every vehicle_id and customer_id
// that does not match a registered record. A shipment can contribute two entries.
func FindDanglingReferences(
	shipments []*shipment.Shipment,
	vehicles []*vehicle.Vehicle,
	customers []*customer.Customer,
) []DanglingReference {
	vehicleIDs := make(map[string]struct{}, len(vehicles))
	for _, v := range vehicles {
		vehicleIDs[v.ID()] = struct{}{}
	}

	customerIDs := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		customerIDs[c.ID()] = struct{}{}
	}

	dangling := make([]DanglingReference, 0)
	for _, s := range shipments {
		if _, ok := vehicleIDs[s.VehicleID()]; !ok {
			dangling = append(dangling, DanglingReference{
				ShipmentID: s.ID(),
				Field:      shipment.FieldVehicleID,
				TargetID:   s.VehicleID(),
			})
		}
		if _, ok := customerIDs[s.CustomerID()]; !ok {
			dangling = append(dangling, DanglingReference{
				ShipmentID: s.ID(),
				Field:      shipment.FieldCustomerID,
				TargetID:   s.CustomerID(),
			})
		}
	}

	return dangling
}
