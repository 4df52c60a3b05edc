// Package guard provides ConstructorGuard, a marker that lets a value tell whether
// it was built by its constructor or is a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities that must only be
// obtained through their constructor. A zero-value guard fails validation.
//
// Example usage:
//
//	var ErrRemoveVehicleCommandIsNotConstructed = errors.New(
//	    "RemoveVehicleCommand must be created via NewRemoveVehicleCommand constructor")
//
//	type RemoveVehicleCommand struct {
//	    vehicleID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c RemoveVehicleCommand) Validate() error {
//	    return c.guard.Validate(ErrRemoveVehicleCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
