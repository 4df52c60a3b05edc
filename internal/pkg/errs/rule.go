package errs

import "errors"

// Rule names the registry rule an error violates. It is used as a metric label
// and in log records.
type Rule string

const (
	RuleDuplicateIdentifier     Rule = "duplicate_identifier"
	RuleInvalidIdentifierFormat Rule = "invalid_identifier_format"
	RuleInvalidFieldValue       Rule = "invalid_field_value"
	RuleUnresolvedReference     Rule = "unresolved_reference"
	RuleNotFound                Rule = "not_found"
	RuleOther                   Rule = "other"
)

// RuleOf classifies err. A nil error has no rule and yields "".
func RuleOf(err error) Rule {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateIdentifier):
		return RuleDuplicateIdentifier
	case errors.Is(err, ErrInvalidIdentifierFormat):
		return RuleInvalidIdentifierFormat
	case errors.Is(err, ErrValueIsInvalid):
		return RuleInvalidFieldValue
	case errors.Is(err, ErrUnresolvedReference):
		return RuleUnresolvedReference
	case errors.Is(err, ErrObjectNotFound):
		return RuleNotFound
	default:
		return RuleOther
	}
}
