package customer

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Kind names the customer registry in errors, logs and metrics.
const Kind = "customer"

// Field names reported by ValueIsInvalidError.
const (
	FieldName        = "name"
	FieldDateOfBirth = "dob"
	FieldAddress     = "address"
	FieldPhone       = "phone"
	FieldEmail       = "email"
)

var (
	// ErrCustomerIsNotConstructed is returned when a zero-value Customer is used.
	ErrCustomerIsNotConstructed = errors.New("Customer must be admitted via Candidate.Admit")
	// ErrCandidateIsNotConstructed is returned when a zero-value Candidate is admitted.
	ErrCandidateIsNotConstructed = errors.New("customer Candidate must be created via NewCandidate")
)

// Customer is an admitted customer record.
type Customer struct {
	id          string
	name        string
	dateOfBirth string
	address     string
	phone       string
	email       string

	guard guard.ConstructorGuard
}

// ID returns the customer identifier.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// DateOfBirth returns the date of birth as entered (DD/MM/YYYY).
func (c *Customer) DateOfBirth() string {
	return c.dateOfBirth
}

// Address returns the postal address.
func (c *Customer) Address() string {
	return c.address
}

// Phone returns the mobile number as entered.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the email address.
func (c *Customer) Email() string {
	return c.email
}

// Validate ensures the customer was admitted through a Candidate.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// Fields groups the raw customer values entered by a caller.
type Fields struct {
	ID          string
	Name        string
	DateOfBirth string
	Address     string
	Phone       string
	Email       string
}

// Candidate holds a customer that is not admitted yet. The clock decides the age
// at admission time.
type Candidate struct {
	format kernel.IdentifierFormat
	clock  kernel.Clock
	fields Fields

	guard guard.ConstructorGuard
}

// NewCandidate captures raw customer fields. Nothing is validated until Admit.
func NewCandidate(format kernel.IdentifierFormat, clock kernel.Clock, fields Fields) Candidate {
	return Candidate{
		format: format,
		clock:  clock,
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}
}

// ID returns the raw identifier.
func (c Candidate) ID() string {
	return c.fields.ID
}

// Admit checks the identifier format and then every field in declared order,
// returning the first violation.
func (c Candidate) Admit() (*Customer, error) {
	if err := c.guard.Validate(ErrCandidateIsNotConstructed); err != nil {
		return nil, err
	}

	if err := c.format.Check(c.fields.ID); err != nil {
		return nil, err
	}

	if err := c.checkFields(); err != nil {
		return nil, err
	}

	return &Customer{
		id:          c.fields.ID,
		name:        c.fields.Name,
		dateOfBirth: c.fields.DateOfBirth,
		address:     c.fields.Address,
		phone:       c.fields.Phone,
		email:       c.fields.Email,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c Candidate) checkFields() error {
	f := c.fields

	if !kernel.IsNonEmpty(f.Name) {
		return errs.NewValueIsInvalidErrorWithCause(FieldName, errs.NewValueIsRequiredError(FieldName))
	}

	if !kernel.IsValidDateOfBirth(f.DateOfBirth) {
		return errs.NewValueIsInvalidErrorWithCause(
			FieldDateOfBirth,
			fmt.Errorf("%q is not a DD/MM/YYYY date", f.DateOfBirth),
		)
	}

	if !kernel.IsAdult(f.DateOfBirth, c.now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			FieldDateOfBirth,
			fmt.Errorf("age must be %d or above", kernel.MinimumCustomerAge),
		)
	}

	if !kernel.IsValidAddress(f.Address) {
		return errs.NewValueIsInvalidErrorWithCause(
			FieldAddress,
			fmt.Errorf("%q is not an Australian address", f.Address),
		)
	}

	if !kernel.IsValidPhone(f.Phone) {
		return errs.NewValueIsInvalidErrorWithCause(
			FieldPhone,
			fmt.Errorf("%q is not an Australian mobile number", f.Phone),
		)
	}

	if !kernel.IsValidEmail(f.Email) {
		return errs.NewValueIsInvalidErrorWithCause(
			FieldEmail,
			fmt.Errorf("%q is not an email address", f.Email),
		)
	}

	return nil
}

func (c Candidate) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock.Now()
}
