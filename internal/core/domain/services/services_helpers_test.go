package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var formats = kernel.DefaultIdentifierFormats()

type vehicleMap map[string]*vehicle.Vehicle

func (m vehicleMap) Find(id string) (*vehicle.Vehicle, error) {
	if v, ok := m[id]; ok {
		return v, nil
	}
	return nil, errs.NewObjectNotFoundError(vehicle.Kind, id)
}

type customerMap map[string]*customer.Customer

func (m customerMap) Find(id string) (*customer.Customer, error) {
	if c, ok := m[id]; ok {
		return c, nil
	}
	return nil, errs.NewObjectNotFoundError(customer.Kind, id)
}

func newVehicle(t *testing.T, id string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewCandidate(formats.Vehicle, id, "Truck", "500").Admit()
	require.NoError(t, err)
	return v
}

func newCustomer(t *testing.T, id string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCandidate(formats.Customer, kernel.SystemClock{}, customer.Fields{
		ID:          id,
		Name:        "Jane Citizen",
		DateOfBirth: "10/10/1990",
		Address:     "123 Main St, Sydney, NSW 2000, Australia",
		Phone:       "0451 506 271",
		Email:       "jane@example.com.au",
	}).Admit()
	require.NoError(t, err)
	return c
}

type acceptAll struct{}

func (acceptAll) Resolve(_, _ string) error { return nil }

func newShipment(t *testing.T, id, vehicleID, customerID string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewCandidate(formats.Shipment, acceptAll{}, shipment.Fields{
		ID:          id,
		Origin:      "Sydney",
		Destination: "Melbourne",
		Weight:      "12.5",
		VehicleID:   vehicleID,
		CustomerID:  customerID,
	}).Admit()
	require.NoError(t, err)
	return s
}
