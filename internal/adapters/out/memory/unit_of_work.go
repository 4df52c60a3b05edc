// Package memory provides the in-process record store: one registry per record
// kind and a Unit of Work that serializes access to them.
//
// Records live for the lifetime of the process. Every command and query runs in
// its own UnitOfWork:
//
//	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.VehicleRegistry().Add(candidate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Begin waits for exclusive access to the whole store and honours context
// cancellation while waiting. Rollback restores the record lists as they were at
// Begin. Changes made inside a record are kept.
package memory

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned by Commit and Rollback without a matching Begin.
var ErrNoActiveUnitOfWork = errors.New("unit of work is not active")

// Store owns the vehicle, customer and shipment registries.
type Store struct {
	sem chan struct{}

	vehicles  *Registry[*vehicle.Vehicle]
	customers *Registry[*customer.Customer]
	shipments *Registry[*shipment.Shipment]
}

// NewStore creates a store with empty registries.
func NewStore() *Store {
	return &Store{
		sem:       make(chan struct{}, 1),
		vehicles:  NewRegistry[*vehicle.Vehicle](vehicle.Kind),
		customers: NewRegistry[*customer.Customer](customer.Kind),
		shipments: NewRegistry[*shipment.Shipment](shipment.Kind),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

func (s *Store) restore() {
	s.vehicles.restore()
	s.customers.restore()
	s.shipments.restore()
}

func (s *Store) keep() {
	s.vehicles.release()
	s.customers.release()
	s.shipments.release()
}

// UnitOfWorkFactory creates UnitOfWork instances over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

var _ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a new, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds exclusive access to the Store between Begin and Commit or Rollback.
// A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin waits for exclusive access to the store.
// Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	return nil
}

// Commit keeps all changes and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	uow.store.keep()
	uow.active = false
	uow.store.release()
	return nil
}

// Rollback restores the record lists and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	uow.store.restore()
	uow.active = false
	uow.store.release()
	return nil
}

// VehicleRegistry returns the vehicle registry.
func (uow *UnitOfWork) VehicleRegistry() ports.VehicleRegistry {
	return uow.store.vehicles
}

// CustomerRegistry returns the customer registry.
func (uow *UnitOfWork) CustomerRegistry() ports.CustomerRegistry {
	return uow.store.customers
}

// ShipmentRegistry returns the shipment registry.
func (uow *UnitOfWork) ShipmentRegistry() ports.ShipmentRegistry {
	return uow.store.shipments
}
