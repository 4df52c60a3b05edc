package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrAlreadyDelivered is returned by Status.Deliver from the Delivered state.
var ErrAlreadyDelivered = errors.New("shipment is already delivered")

// Status is the delivery state of a shipment.
//
// State transitions:
//
//	InTransit ──> Delivered
//
// Delivered is terminal. There is no cancellation or reversal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InTransit is the initial status of every admitted shipment.
	InTransit

	// Delivered is the final status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

// Validate checks that s is InTransit or Delivered.
func (s Status) Validate() error {
	if s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "In Transit", "Delivered" or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDelivered reports whether s is Delivered.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Invalid transitions:
//   - Delivered -> Delivered (ErrAlreadyDelivered)
//   - Unknown -> Delivered (ValueIsInvalidError)
func (s Status) Deliver() (Status, error) {
	switch s {
	case InTransit:
		return Delivered, nil
	case Delivered:
		return Delivered, ErrAlreadyDelivered
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
}

// DeliveryOutcome is the result of a delivery request. FirstTimeDelivered and
// AlreadyDelivered come from the shipment itself; NotFound is reported by callers
// that could not resolve the shipment identifier.
type DeliveryOutcome int

const (
	FirstTimeDelivered DeliveryOutcome = iota + 1
	AlreadyDelivered
	NotFound
)

// String returns the outcome name.
func (o DeliveryOutcome) String() string {
	switch o {
	case FirstTimeDelivered:
		return "FirstTimeDelivered"
	case AlreadyDelivered:
		return "AlreadyDelivered"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}
