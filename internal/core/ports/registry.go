// Package ports defines the registry contracts between the domain layer and the
// record stores, enabling dependency inversion and testability.
package ports

import (
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// Registry is an ordered collection of admitted records of one kind.
// Records are kept in insertion order and identifiers are unique within a registry.
//
// Registries are not safe for concurrent use on their own; callers reach them
// through a UnitOfWork, which serializes access.
type Registry[T kernel.Entity] interface {
	// Add admits a candidate and appends the record.
	// The identifier is checked for uniqueness before the candidate validates
	// itself, so a duplicate is reported even when other fields are also invalid.
	Add(candidate kernel.Candidate[T]) (T, error)

	// Update replaces an existing record with an admitted candidate of the same
	// identifier. The record keeps its position. Nothing changes on failure.
	Update(candidate kernel.Candidate[T]) (T, error)

	// Remove deletes the record with the given identifier.
	// Returns ObjectNotFoundError when there is none. References held by other
	// records are not checked.
	Remove(id string) error

	// Find returns the record with the given identifier, or ObjectNotFoundError.
	Find(id string) (T, error)

	// List returns all records in insertion order. The slice is a copy.
	List() []T

	// Count returns the number of records.
	Count() int

	// IsUnique reports whether no record has the given identifier.
	IsUnique(id string) bool
}

type (
	VehicleRegistry  = Registry[*vehicle.Vehicle]
	CustomerRegistry = Registry[*customer.Customer]
	ShipmentRegistry = Registry[*shipment.Shipment]
)
