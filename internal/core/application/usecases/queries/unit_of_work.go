// Package queries contains read operations over the registries.
// Queries return read models and never change records.
package queries

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrIDIsRequired is returned by constructors of queries that address one record.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// read runs fn inside a unit of work that is always rolled back.
func read(ctx context.Context, factory ports.UnitOfWorkFactory, fn func(uow ports.UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}
