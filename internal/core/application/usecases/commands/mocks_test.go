package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var formats = kernel.DefaultIdentifierFormats()

type MockRegistry[T kernel.Entity] struct{ mock.Mock }

func (m *MockRegistry[T]) Add(candidate kernel.Candidate[T]) (T, error) {
	args := m.Called(candidate)
	record, _ := args.Get(0).(T)
	return record, args.Error(1)
}

func (m *MockRegistry[T]) Update(candidate kernel.Candidate[T]) (T, error) {
	args := m.Called(candidate)
	record, _ := args.Get(0).(T)
	return record, args.Error(1)
}

func (m *MockRegistry[T]) Remove(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRegistry[T]) Find(id string) (T, error) {
	args := m.Called(id)
	record, _ := args.Get(0).(T)
	return record, args.Error(1)
}

func (m *MockRegistry[T]) List() []T { return nil }

func (m *MockRegistry[T]) Count() int { return 0 }

func (m *MockRegistry[T]) IsUnique(string) bool { return true }

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VehicleRegistry() ports.VehicleRegistry {
	args := m.Called()
	return args.Get(0).(ports.VehicleRegistry)
}

func (m *MockUoW) CustomerRegistry() ports.CustomerRegistry {
	args := m.Called()
	return args.Get(0).(ports.CustomerRegistry)
}

func (m *MockUoW) ShipmentRegistry() ports.ShipmentRegistry {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRegistry)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func admittedVehicle(id string) *vehicle.Vehicle {
	v, err := vehicle.NewCandidate(formats.Vehicle, id, "Truck", "500").Admit()
	if err != nil {
		panic(err)
	}
	return v
}

func customerFields(id string) customer.Fields {
	return customer.Fields{
		ID:          id,
		Name:        "John Smith",
		DateOfBirth: "01/01/1990",
		Address:     "123 Main St, Sydney, NSW 2000, Australia",
		Phone:       "0412 345 678",
		Email:       "john@example.com",
	}
}

func admittedCustomer(id string) *customer.Customer {
	c, err := customer.NewCandidate(formats.Customer, kernel.SystemClock{}, customerFields(id)).Admit()
	if err != nil {
		panic(err)
	}
	return c
}

type acceptAll struct{}

func (acceptAll) Resolve(_, _ string) error { return nil }

func shipmentFields(id string) shipment.Fields {
	return shipment.Fields{
		ID:          id,
		Origin:      "Sydney",
		Destination: "Melbourne",
		Weight:      "100",
		VehicleID:   "V001",
		CustomerID:  "C001",
	}
}

func admittedShipment(id string) *shipment.Shipment {
	s, err := shipment.NewCandidate(formats.Shipment, acceptAll{}, shipmentFields(id)).Admit()
	if err != nil {
		panic(err)
	}
	return s
}
