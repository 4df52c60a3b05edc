package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetRegistryStatsQueryIsNotConstructed = errors.New(
	"GetRegistryStatsQuery must be created via NewGetRegistryStatsQuery constructor",
)

// GetRegistryStatsQuery asks for registry sizes and the next suggested identifiers.
type GetRegistryStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRegistryStatsQuery creates a parameterless stats query.
func NewGetRegistryStatsQuery() GetRegistryStatsQuery {
	return GetRegistryStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRegistryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRegistryStatsQueryIsNotConstructed)
}
