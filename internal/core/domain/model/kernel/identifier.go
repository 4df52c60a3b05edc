package kernel

import (
	"fmt"
	"regexp"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrIdentifierFormatIsNotConstructed is returned when a zero-value IdentifierFormat is used.
var ErrIdentifierFormatIsNotConstructed = errs.NewValueIsRequiredError(
	"identifier format must be created via NewIdentifierFormat")

var prefixPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// IdentifierFormat describes the identifiers of one entity type: a letter prefix
// followed by at least three digits, e.g. V001 or C1234. Matching is exact and
// case-sensitive.
//
// Example:
//
//	format, err := kernel.NewIdentifierFormat("V")
//	if err != nil {
//	    return err
//	}
//	format.Matches("V001") // true
//	format.Matches("X1")   // false
type IdentifierFormat struct { //nolint:recvcheck //using for validation
	prefix string
	re     *regexp.Regexp
	guard  guard.ConstructorGuard
}

// NewIdentifierFormat builds the format for prefix. The prefix must be one or more
// ASCII letters.
func NewIdentifierFormat(prefix string) (IdentifierFormat, error) {
	if !prefixPattern.MatchString(prefix) {
		return IdentifierFormat{}, errs.NewValueIsInvalidErrorWithCause(
			"prefix",
			fmt.Errorf("%q is not one or more ASCII letters", prefix),
		)
	}

	return IdentifierFormat{
		prefix: prefix,
		re:     regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `[0-9]{3,}$`),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustIdentifierFormat is like NewIdentifierFormat but panics on an invalid prefix.
// It is meant for package level defaults and tests.
func MustIdentifierFormat(prefix string) IdentifierFormat {
	f, err := NewIdentifierFormat(prefix)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate reports whether the format was built by NewIdentifierFormat.
func (f IdentifierFormat) Validate() error {
	return f.guard.Validate(ErrIdentifierFormatIsNotConstructed)
}

// Prefix returns the letter prefix.
func (f IdentifierFormat) Prefix() string {
	return f.prefix
}

// Pattern returns the human readable pattern shown to users, e.g. "Vxxx".
func (f IdentifierFormat) Pattern() string {
	return f.prefix + "xxx"
}

// Matches reports whether id follows the format. A zero-value format matches nothing.
func (f IdentifierFormat) Matches(id string) bool {
	if f.re == nil {
		return false
	}
	return f.re.MatchString(id)
}

// Check returns an InvalidIdentifierFormatError when id does not match.
func (f IdentifierFormat) Check(id string) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if !f.Matches(id) {
		return errs.NewInvalidIdentifierFormatError(id, f.Pattern())
	}
	return nil
}

// Suggest proposes the identifier following count existing records, zero padded to
// three digits: Suggest(0) is "V001", Suggest(41) is "V042". The suggestion is a
// hint for callers; it is not checked for uniqueness.
func (f IdentifierFormat) Suggest(count int) string {
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("%s%03d", f.prefix, count+1)
}

// IdentifierFormats holds the identifier format of each registry.
type IdentifierFormats struct {
	Vehicle  IdentifierFormat
	Customer IdentifierFormat
	Shipment IdentifierFormat
}

// NewIdentifierFormats builds the three registry formats from their prefixes.
func NewIdentifierFormats(vehiclePrefix, customerPrefix, shipmentPrefix string) (IdentifierFormats, error) {
	vehicle, err := NewIdentifierFormat(vehiclePrefix)
	if err != nil {
		return IdentifierFormats{}, err
	}
	customer, err := NewIdentifierFormat(customerPrefix)
	if err != nil {
		return IdentifierFormats{}, err
	}
	shipment, err := NewIdentifierFormat(shipmentPrefix)
	if err != nil {
		return IdentifierFormats{}, err
	}
	return IdentifierFormats{Vehicle: vehicle, Customer: customer, Shipment: shipment}, nil
}

// DefaultIdentifierFormats returns the V, C and S formats.
func DefaultIdentifierFormats() IdentifierFormats {
	return IdentifierFormats{
		Vehicle:  MustIdentifierFormat("V"),
		Customer: MustIdentifierFormat("C"),
		Shipment: MustIdentifierFormat("S"),
	}
}
