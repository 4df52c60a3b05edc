package services

import (
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

// VehicleFinder looks a vehicle up by identifier.
type VehicleFinder interface {
	Find(id string) (*vehicle.Vehicle, error)
}

// CustomerFinder looks a customer up by identifier.
type CustomerFinder interface {
	Find(id string) (*customer.Customer, error)
}

var _ shipment.ReferenceResolver = ReferenceResolver{}

// ReferenceResolver checks shipment references against the vehicle and customer
// registries. Only existence is checked; vehicle capacity is never compared with
// shipment weight.
//
// Example usage:
//
//	resolver := services.NewReferenceResolver(uow.VehicleRegistry(), uow.CustomerRegistry())
//	candidate := shipment.NewCandidate(formats.Shipment, resolver, fields)
//	admitted, err := uow.ShipmentRegistry().Add(candidate)
type ReferenceResolver struct {
	vehicles  VehicleFinder
	customers CustomerFinder
}

// NewReferenceResolver creates a resolver over the given registries.
func NewReferenceResolver(vehicles VehicleFinder, customers CustomerFinder) ReferenceResolver {
	return ReferenceResolver{vehicles: vehicles, customers: customers}
}

// Resolve checks the vehicle first, then the customer. It returns an
// UnresolvedReferenceError for the first identifier that is not registered.
// Lookup failures other than ObjectNotFound are returned unchanged.
func (r ReferenceResolver) Resolve(vehicleID, customerID string) error {
	if r.vehicles == nil || r.customers == nil {
		return errs.NewValueIsRequiredError("registry")
	}

	if _, err := r.vehicles.Find(vehicleID); err != nil {
		return unresolved(shipment.FieldVehicleID, vehicleID, err)
	}

	if _, err := r.customers.Find(customerID); err != nil {
		return unresolved(shipment.FieldCustomerID, customerID, err)
	}

	return nil
}

func unresolved(field, id string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewUnresolvedReferenceError(field, id)
	}
	return err
}
