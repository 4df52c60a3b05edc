package services_test

import (
	"errors"
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingVehicles struct{ err error }

func (f failingVehicles) Find(string) (*vehicle.Vehicle, error) { return nil, f.err }

func TestReferenceResolver_Resolve(t *testing.T) {
	vehicles := vehicleMap{"V001": newVehicle(t, "V001")}
	customers := customerMap{"C001": newCustomer(t, "C001")}
	resolver := services.NewReferenceResolver(vehicles, customers)

	t.Run("should resolve registered references", func(t *testing.T) {
		require.NoError(t, resolver.Resolve("V001", "C001"))
	})

	t.Run("should report the vehicle first", func(t *testing.T) {
		err := resolver.Resolve("V404", "C404")

		var unresolved *errs.UnresolvedReferenceError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, shipment.FieldVehicleID, unresolved.ParamName)
		assert.Equal(t, "V404", unresolved.ID)
	})

	t.Run("should report an unknown customer", func(t *testing.T) {
		err := resolver.Resolve("V001", "C404")

		var unresolved *errs.UnresolvedReferenceError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, shipment.FieldCustomerID, unresolved.ParamName)
		assert.Equal(t, "C404", unresolved.ID)
	})

	t.Run("should pass other lookup failures through", func(t *testing.T) {
		boom := errors.New("boom")
		r := services.NewReferenceResolver(failingVehicles{err: boom}, customers)

		err := r.Resolve("V001", "C001")

		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, errs.ErrUnresolvedReference)
	})

	t.Run("zero value resolver is rejected", func(t *testing.T) {
		err := services.ReferenceResolver{}.Resolve("V001", "C001")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestReferenceResolver_NeverComparesCapacity(t *testing.T) {
	small, err := vehicle.NewCandidate(formats.Vehicle, "V002", "Car", "1").Admit()
	require.NoError(t, err)
	resolver := services.NewReferenceResolver(
		vehicleMap{"V002": small},
		customerMap{"C001": newCustomer(t, "C001")},
	)

	s, err := shipment.NewCandidate(formats.Shipment, resolver, shipment.Fields{
		ID:          "S001",
		Origin:      "Perth",
		Destination: "Darwin",
		Weight:      "9999",
		VehicleID:   "V002",
		CustomerID:  "C001",
	}).Admit()

	require.NoError(t, err)
	assert.InDelta(t, 9999.0, s.Weight(), 1e-9)
}
