package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateIdentifier     = errors.New("identifier is duplicate")
	ErrInvalidIdentifierFormat = errors.New("identifier format is invalid")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrUnresolvedReference     = errors.New("reference is unresolved")
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsRequired         = errors.New("value is required")
)

// sanitize keeps user supplied text on a single line inside error messages.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// DuplicateIdentifierError reports an identifier already present in a registry.
type DuplicateIdentifierError struct {
	Kind  string
	ID    string
	Cause error
}

func NewDuplicateIdentifierError(kind, id string) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{Kind: kind, ID: id}
}

func NewDuplicateIdentifierErrorWithCause(kind, id string, cause error) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{Kind: kind, ID: id, Cause: cause}
}

func (e *DuplicateIdentifierError) Error() string {
	msg := fmt.Sprintf("%s: %s %s already exists", ErrDuplicateIdentifier, e.Kind, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}

// InvalidIdentifierFormatError reports an identifier that does not match the
// pattern of its entity type. Pattern is the human readable form, e.g. "Vxxx".
type InvalidIdentifierFormatError struct {
	ID      string
	Pattern string
	Cause   error
}

func NewInvalidIdentifierFormatError(id, pattern string) *InvalidIdentifierFormatError {
	return &InvalidIdentifierFormatError{ID: id, Pattern: pattern}
}

func NewInvalidIdentifierFormatErrorWithCause(id, pattern string, cause error) *InvalidIdentifierFormatError {
	return &InvalidIdentifierFormatError{ID: id, Pattern: pattern, Cause: cause}
}

func (e *InvalidIdentifierFormatError) Error() string {
	msg := fmt.Sprintf("%s: %q does not follow the pattern %s", ErrInvalidIdentifierFormat, sanitize(e.ID), e.Pattern)
	return withCause(msg, e.Cause)
}

func (e *InvalidIdentifierFormatError) Unwrap() error {
	return ErrInvalidIdentifierFormat
}

// ValueIsInvalidError reports a field whose value failed validation.
// ParamName names the field.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// UnresolvedReferenceError reports a reference field whose identifier is not
// present in the referenced registry.
type UnresolvedReferenceError struct {
	ParamName string
	ID        string
	Cause     error
}

func NewUnresolvedReferenceError(paramName, id string) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{ParamName: paramName, ID: id}
}

func NewUnresolvedReferenceErrorWithCause(paramName, id string, cause error) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrUnresolvedReference, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}

// ObjectNotFoundError reports a lookup by identifier that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        string
	Cause     error
}

func NewObjectNotFoundError(paramName, id string) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName, id string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
