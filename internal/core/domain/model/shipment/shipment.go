package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Kind names the shipment registry in errors, logs and metrics.
const Kind = "shipment"

// Field names reported by ValueIsInvalidError and UnresolvedReferenceError.
const (
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldWeight      = "weight"
	FieldVehicleID   = "vehicle_id"
	FieldCustomerID  = "customer_id"
)

var (
	// ErrShipmentIsNotConstructed is returned when a zero-value Shipment is used.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be admitted via Candidate.Admit")
	// ErrCandidateIsNotConstructed is returned when a zero-value Candidate is admitted.
	ErrCandidateIsNotConstructed = errors.New("shipment Candidate must be created via NewCandidate")
	// ErrResolverIsRequired is returned when a Candidate has no ReferenceResolver.
	ErrResolverIsRequired = errs.NewValueIsRequiredError("reference resolver")
)

// ReferenceResolver confirms that the referenced vehicle and customer exist.
// It returns an UnresolvedReferenceError naming the first reference that does not.
type ReferenceResolver interface {
	Resolve(vehicleID, customerID string) error
}

// Shipment is an admitted shipment. Its only mutation is MarkDelivered.
type Shipment struct {
	id          string
	origin      string
	destination string
	weight      float64
	vehicleID   string
	customerID  string
	status      Status
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// ID returns the shipment identifier.
func (s *Shipment) ID() string {
	return s.id
}

// Origin returns where the shipment starts.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns where the shipment goes.
func (s *Shipment) Destination() string {
	return s.destination
}

// Weight returns the shipment weight.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// VehicleID returns the referenced vehicle identifier. The vehicle may have been
// removed since the shipment was admitted.
func (s *Shipment) VehicleID() string {
	return s.vehicleID
}

// CustomerID returns the referenced customer identifier. The customer may have been
// removed since the shipment was admitted.
func (s *Shipment) CustomerID() string {
	return s.customerID
}

// Status returns the delivery status.
func (s *Shipment) Status() Status {
	return s.status
}

// DeliveredAt returns the delivery time, or false while the shipment is in transit.
func (s *Shipment) DeliveredAt() (time.Time, bool) {
	if s.deliveredAt == nil {
		return time.Time{}, false
	}
	return *s.deliveredAt, true
}

// Validate ensures the shipment was admitted through a Candidate.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id == other.id
}

// Snapshot returns a copy that later deliveries of s do not change.
func (s *Shipment) Snapshot() *Shipment {
	c := *s
	if s.deliveredAt != nil {
		at := *s.deliveredAt
		c.deliveredAt = &at
	}
	return &c
}

// MarkDelivered moves an in-transit shipment to Delivered and records at as the
// delivery time. A shipment that is already delivered is left untouched and
// AlreadyDelivered is returned.
func (s *Shipment) MarkDelivered(at time.Time) (DeliveryOutcome, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	next, err := s.status.Deliver()
	if errors.Is(err, ErrAlreadyDelivered) {
		return AlreadyDelivered, nil
	}
	if err != nil {
		return 0, err
	}

	s.status = next
	s.deliveredAt = &at
	return FirstTimeDelivered, nil
}

// Fields groups the raw shipment values entered by a caller.
type Fields struct {
	ID          string
	Origin      string
	Destination string
	Weight      string
	VehicleID   string
	CustomerID  string
}

// Candidate holds a shipment that is not admitted yet.
type Candidate struct {
	format   kernel.IdentifierFormat
	resolver ReferenceResolver
	fields   Fields

	guard guard.ConstructorGuard
}

// NewCandidate captures raw shipment fields. Nothing is validated until Admit.
func NewCandidate(format kernel.IdentifierFormat, resolver ReferenceResolver, fields Fields) Candidate {
	return Candidate{
		format:   format,
		resolver: resolver,
		fields:   fields,
		guard:    guard.NewConstructorGuard(),
	}
}

// ID returns the raw identifier.
func (c Candidate) ID() string {
	return c.fields.ID
}

// Admit checks the identifier format, origin, destination and weight, then resolves
// the vehicle and customer references. The first violation is returned. An admitted
// shipment starts In Transit with no delivery time.
func (c Candidate) Admit() (*Shipment, error) {
	if err := c.guard.Validate(ErrCandidateIsNotConstructed); err != nil {
		return nil, err
	}

	if c.resolver == nil {
		return nil, ErrResolverIsRequired
	}

	f := c.fields

	if err := c.format.Check(f.ID); err != nil {
		return nil, err
	}

	if !kernel.IsNonEmpty(f.Origin) {
		return nil, errs.NewValueIsInvalidErrorWithCause(FieldOrigin, errs.NewValueIsRequiredError(FieldOrigin))
	}

	if !kernel.IsNonEmpty(f.Destination) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			FieldDestination,
			errs.NewValueIsRequiredError(FieldDestination),
		)
	}

	weight, ok := kernel.ParseWeight(f.Weight)
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			FieldWeight,
			fmt.Errorf("%q is not a number greater than 0", f.Weight),
		)
	}

	if err := c.resolver.Resolve(f.VehicleID, f.CustomerID); err != nil {
		return nil, err
	}

	return &Shipment{
		id:          f.ID,
		origin:      f.Origin,
		destination: f.Destination,
		weight:      weight,
		vehicleID:   f.VehicleID,
		customerID:  f.CustomerID,
		status:      InTransit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}
