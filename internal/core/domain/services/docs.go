// Package services provides domain services that work across the vehicle, customer
// and shipment registries.
//
// The package includes:
//   - ReferenceResolver: confirms that a shipment's vehicle and customer exist
//   - FindDanglingReferences: reports shipments whose references no longer resolve
//
// Referential integrity is checked when a shipment is admitted and never again.
// Removing a vehicle or customer does not cascade, so FindDanglingReferences exists
// to make the resulting dangling references visible.
package services
