package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestFindDanglingReferences(t *testing.T) {
	t.Run("should report nothing when every reference resolves", func(t *testing.T) {
		got := services.FindDanglingReferences(
			[]*shipment.Shipment{newShipment(t, "S001", "V001", "C001")},
			[]*vehicle.Vehicle{newVehicle(t, "V001")},
			[]*customer.Customer{newCustomer(t, "C001")},
		)

		assert.Empty(t, got)
	})

	t.Run("should report removed targets in shipment order", func(t *testing.T) {
		// Given
		shipments := []*shipment.Shipment{
			newShipment(t, "S001", "V001", "C002"),
			newShipment(t, "S002", "V002", "C001"),
			newShipment(t, "S003", "V009", "C009"),
		}
		vehicles := []*vehicle.Vehicle{newVehicle(t, "V001")}
		customers := []*customer.Customer{newCustomer(t, "C001")}

		// When
		got := services.FindDanglingReferences(shipments, vehicles, customers)

		// Then
		assert.Equal(t, []services.DanglingReference{
			{ShipmentID: "S001", Field: shipment.FieldCustomerID, TargetID: "C002"},
			{ShipmentID: "S002", Field: shipment.FieldVehicleID, TargetID: "V002"},
			{ShipmentID: "S003", Field: shipment.FieldVehicleID, TargetID: "V009"},
			{ShipmentID: "S003", Field: shipment.FieldCustomerID, TargetID: "C009"},
		}, got)
	})

	t.Run("should return an empty slice for no shipments", func(t *testing.T) {
		got := services.FindDanglingReferences(nil, nil, nil)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
