package vehicle

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Kind names the vehicle registry in errors, logs and metrics.
const Kind = "vehicle"

// Field names reported by ValueIsInvalidError.
const (
	FieldType     = "vehicle_type"
	FieldCapacity = "capacity"
)

var (
	// ErrVehicleIsNotConstructed is returned when a zero-value Vehicle is used.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be admitted via Candidate.Admit")
	// ErrCandidateIsNotConstructed is returned when a zero-value Candidate is admitted.
	ErrCandidateIsNotConstructed = errors.New("vehicle Candidate must be created via NewCandidate")
)

// Vehicle is an admitted fleet record. It is only produced by Candidate.Admit, so
// every Vehicle held by a registry satisfies all field rules.
type Vehicle struct {
	id          string
	vehicleType Type
	capacity    int

	guard guard.ConstructorGuard
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() string {
	return v.id
}

// Type returns the vehicle type.
func (v *Vehicle) Type() Type {
	return v.vehicleType
}

// Capacity returns the vehicle capacity.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// Validate ensures the vehicle was admitted through a Candidate.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id == other.id
}

// Candidate holds the raw field values of a vehicle that is not admitted yet.
//
// Example:
//
//	candidate := vehicle.NewCandidate(format, "V001", "Truck", "500")
//	v, err := candidate.Admit()
//	if err != nil {
//	    // err is an InvalidIdentifierFormatError or a ValueIsInvalidError
//	}
type Candidate struct {
	format      kernel.IdentifierFormat
	id          string
	vehicleType string
	capacity    string

	guard guard.ConstructorGuard
}

// NewCandidate captures raw vehicle fields. Nothing is validated until Admit.
func NewCandidate(format kernel.IdentifierFormat, id, vehicleType, capacity string) Candidate {
	return Candidate{
		format:      format,
		id:          id,
		vehicleType: vehicleType,
		capacity:    capacity,
		guard:       guard.NewConstructorGuard(),
	}
}

// ID returns the raw identifier.
func (c Candidate) ID() string {
	return c.id
}

// Admit checks, in order, the identifier format, the type and the capacity, and
// returns the first violation. On success it returns the admitted Vehicle.
func (c Candidate) Admit() (*Vehicle, error) {
	if err := c.guard.Validate(ErrCandidateIsNotConstructed); err != nil {
		return nil, err
	}

	if err := c.format.Check(c.id); err != nil {
		return nil, err
	}

	vehicleType, err := ParseType(c.vehicleType)
	if err != nil {
		return nil, err
	}

	capacity, ok := kernel.ParseCapacity(c.capacity)
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			FieldCapacity,
			fmt.Errorf("%q is not a positive whole number", c.capacity),
		)
	}

	return &Vehicle{
		id:          c.id,
		vehicleType: vehicleType,
		capacity:    capacity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}
