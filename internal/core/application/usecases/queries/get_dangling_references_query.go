package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetDanglingReferencesQueryIsNotConstructed = errors.New(
	"GetDanglingReferencesQuery must be created via NewGetDanglingReferencesQuery constructor",
)

// GetDanglingReferencesQuery asks for shipment references whose vehicle or
// customer has been removed.
type GetDanglingReferencesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDanglingReferencesQuery creates a parameterless audit query.
func NewGetDanglingReferencesQuery() GetDanglingReferencesQuery {
	return GetDanglingReferencesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDanglingReferencesQuery) Validate() error {
	return q.guard.Validate(ErrGetDanglingReferencesQueryIsNotConstructed)
}
