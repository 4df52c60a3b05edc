package memory

import (
	"slices"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var errCandidateIsRequired = errs.NewValueIsRequiredError("candidate")

// Registry keeps admitted records of one kind in insertion order.
// It is not safe for concurrent use; the Store serializes access through UnitOfWork.
type Registry[T kernel.Entity] struct {
	kind    string
	records []T

	// saved holds the records as they were before the first change in the
	// current unit of work.
	saved    []T
	modified bool
}

var (
	_ ports.VehicleRegistry  = (*Registry[*vehicle.Vehicle])(nil)
	_ ports.CustomerRegistry = (*Registry[*customer.Customer])(nil)
	_ ports.ShipmentRegistry = (*Registry[*shipment.Shipment])(nil)
)

// NewRegistry creates an empty registry. kind names the records in errors.
func NewRegistry[T kernel.Entity](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		records: make([]T, 0),
	}
}

// Add checks identifier uniqueness, admits the candidate and appends the record.
func (r *Registry[T]) Add(candidate kernel.Candidate[T]) (T, error) {
	var zero T
	if candidate == nil {
		return zero, errCandidateIsRequired
	}

	id := candidate.ID()
	if !r.IsUnique(id) {
		return zero, errs.NewDuplicateIdentifierError(r.kind, id)
	}

	record, err := candidate.Admit()
	if err != nil {
		return zero, err
	}

	r.checkpoint()
	r.records = append(r.records, record)
	return record, nil
}

// Update admits the candidate and replaces the record with the same identifier.
func (r *Registry[T]) Update(candidate kernel.Candidate[T]) (T, error) {
	var zero T
	if candidate == nil {
		return zero, errCandidateIsRequired
	}

	id := candidate.ID()
	idx := r.indexOf(id)
	if idx < 0 {
		return zero, errs.NewObjectNotFoundError(r.kind, id)
	}

	record, err := candidate.Admit()
	if err != nil {
		return zero, err
	}

	r.checkpoint()
	r.records[idx] = record
	return record, nil
}

// Remove deletes the record with the given identifier.
func (r *Registry[T]) Remove(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return errs.NewObjectNotFoundError(r.kind, id)
	}

	r.checkpoint()
	r.records = slices.Delete(r.records, idx, idx+1)
	return nil
}

// Find scans the registry for the given identifier.
func (r *Registry[T]) Find(id string) (T, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, errs.NewObjectNotFoundError(r.kind, id)
	}
	return r.records[idx], nil
}

// List returns a copy of the records in insertion order.
func (r *Registry[T]) List() []T {
	return slices.Clone(r.records)
}

// Count returns the number of records.
func (r *Registry[T]) Count() int {
	return len(r.records)
}

// IsUnique reports whether no record has the given identifier.
func (r *Registry[T]) IsUnique(id string) bool {
	return r.indexOf(id) < 0
}

func (r *Registry[T]) indexOf(id string) int {
	for i, record := range r.records {
		if record.ID() == id {
			return i
		}
	}
	return -1
}

// checkpoint remembers the record list before the first change of a unit of work.
func (r *Registry[T]) checkpoint() {
	if r.modified {
		return
	}
	r.saved = slices.Clone(r.records)
	r.modified = true
}

// restore puts back the record list saved by checkpoint.
// Changes made inside a record, such as a shipment delivery, are not undone.
func (r *Registry[T]) restore() {
	if r.modified {
		r.records = r.saved
	}
	r.release()
}

func (r *Registry[T]) release() {
	r.saved = nil
	r.modified = false
}
