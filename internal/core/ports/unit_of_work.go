package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one business operation over the registries.
// Client code must explicitly manage its lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin claims exclusive access to the registries.
	Begin(ctx context.Context) error

	// Commit ends the unit of work and keeps its changes.
	Commit(ctx context.Context) error

	// Rollback ends the unit of work. Calling it after Commit is a no-op, so it
	// can be deferred unconditionally.
	Rollback(ctx context.Context) error

	// VehicleRegistry returns the vehicle registry bound to this unit of work.
	VehicleRegistry() VehicleRegistry

	// CustomerRegistry returns the customer registry bound to this unit of work.
	CustomerRegistry() CustomerRegistry

	// ShipmentRegistry returns the shipment registry bound to this unit of work.
	ShipmentRegistry() ShipmentRegistry
}
