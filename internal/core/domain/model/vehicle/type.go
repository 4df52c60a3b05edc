package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type is the kind of a vehicle. Parsing is exact and case-sensitive.
type Type int

const (
	// UnknownType is the zero value and is never admitted.
	UnknownType Type = iota
	Truck
	Van
	Car
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Truck:       "Truck",
		Van:         "Van",
		Car:         "Car",
	}
}

func getValidTypes() map[string]Type {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[string]Type{
		"Truck": Truck,
		"Van":   Van,
		"Car":   Car,
	}
}

// Types returns the admissible types in display order.
func Types() []Type {
	return []Type{Truck, Van, Car}
}

// ParseType returns the Type named s ("Truck", "Van" or "Car").
func ParseType(s string) (Type, error) {
	t, ok := getValidTypes()[s]
	if !ok {
		return UnknownType, errs.NewValueIsInvalidErrorWithCause(
			FieldType,
			fmt.Errorf("%q is not one of Truck, Van, Car", s),
		)
	}
	return t, nil
}

// Validate checks that t is one of Truck, Van or Car.
func (t Type) Validate() error {
	if t != Truck && t != Van && t != Car {
		return errs.NewValueIsInvalidErrorWithCause(FieldType, fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

// String returns the type name, or "Unknown" for invalid values.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}
