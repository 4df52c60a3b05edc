package memory_test

import (
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

var formats = kernel.DefaultIdentifierFormats()

func vehicleCandidate(id, vehicleType, capacity string) vehicle.Candidate {
	return vehicle.NewCandidate(formats.Vehicle, id, vehicleType, capacity)
}

func customerCandidate(id string) customer.Candidate {
	return customer.NewCandidate(formats.Customer, kernel.SystemClock{}, customer.Fields{
		ID:          id,
		Name:        "John Smith",
		DateOfBirth: "01/01/1990",
		Address:     "123 Main St, Sydney, NSW 2000, Australia",
		Phone:       "0412 345 678",
		Email:       "john@example.com",
	})
}

func shipmentCandidate(uow ports.UnitOfWork, id, vehicleID, customerID string) shipment.Candidate {
	resolver := services.NewReferenceResolver(uow.VehicleRegistry(), uow.CustomerRegistry())
	return shipment.NewCandidate(formats.Shipment, resolver, shipment.Fields{
		ID:          id,
		Origin:      "Sydney",
		Destination: "Melbourne",
		Weight:      "100",
		VehicleID:   vehicleID,
		CustomerID:  customerID,
	})
}
