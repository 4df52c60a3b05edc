// Package commands contains business operations that modify the registries.
// Every command follows the same pattern: constructor guard, unit of work,
// admission through the registry, then logging and metrics for the outcome.
// Handlers return core errors unchanged so adapters can classify them.
package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Unit of Work interfaces give command handlers exclusive access to the registries
// they change.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRegistryFactory provides the vehicle registry within a unit of work.
	VehicleRegistryFactory interface {
		VehicleRegistry() ports.VehicleRegistry
	}

	// CustomerRegistryFactory provides the customer registry within a unit of work.
	CustomerRegistryFactory interface {
		CustomerRegistry() ports.CustomerRegistry
	}

	// ShipmentRegistryFactory provides the shipment registry within a unit of work.
	ShipmentRegistryFactory interface {
		ShipmentRegistry() ports.ShipmentRegistry
	}

	// VehicleUoW is used by commands that only change vehicles.
	VehicleUoW interface {
		TxManager
		VehicleRegistryFactory
	}

	// VehicleUoWFactory creates vehicle units of work.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// CustomerUoW is used by commands that only change customers.
	CustomerUoW interface {
		TxManager
		CustomerRegistryFactory
	}

	// CustomerUoWFactory creates customer units of work.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ShipmentUoW is used by commands that only touch shipment records.
	ShipmentUoW interface {
		TxManager
		ShipmentRegistryFactory
	}

	// ShipmentUoWFactory creates shipment units of work.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW spans all three registries. Shipment commands need it because a new
	// shipment resolves its vehicle and customer references.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   resolver := services.NewReferenceResolver(uow.VehicleRegistry(), uow.CustomerRegistry())
	//   // ... admit the shipment
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		VehicleRegistryFactory
		CustomerRegistryFactory
		ShipmentRegistryFactory
	}

	// UoWFactory creates units of work over all registries.
	UoWFactory interface {
		Create() UoW
	}
)

// ErrIDIsRequired is returned by constructors of commands that address an
// existing record.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")
