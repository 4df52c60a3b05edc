// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per rule the record registry can report:
//   - DuplicateIdentifierError: an identifier is already held by the registry
//   - InvalidIdentifierFormatError: an identifier does not follow its pattern
//   - ValueIsInvalidError: a field value fails its validator
//   - UnresolvedReferenceError: a reference does not resolve to an existing record
//   - ObjectNotFoundError: a record cannot be found
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
package errs
