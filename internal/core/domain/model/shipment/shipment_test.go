package shipment_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var format = kernel.MustIdentifierFormat("S")

// stubResolver knows a fixed set of vehicles and customers.
type stubResolver struct {
	vehicles  map[string]bool
	customers map[string]bool
	calls     int
}

func (r *stubResolver) Resolve(vehicleID, customerID string) error {
	r.calls++
	if !r.vehicles[vehicleID] {
		return errs.NewUnresolvedReferenceError(shipment.FieldVehicleID, vehicleID)
	}
	if !r.customers[customerID] {
		return errs.NewUnresolvedReferenceError(shipment.FieldCustomerID, customerID)
	}
	return nil
}

func newResolver() *stubResolver {
	return &stubResolver{
		vehicles:  map[string]bool{"V001": true},
		customers: map[string]bool{"C001": true},
	}
}

func validFields() shipment.Fields {
	return shipment.Fields{
		ID:          "S001",
		Origin:      "Sydney",
		Destination: "Melbourne",
		Weight:      "12.5",
		VehicleID:   "V001",
		CustomerID:  "C001",
	}
}

func admit(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewCandidate(format, newResolver(), validFields()).Admit()
	require.NoError(t, err)
	return s
}

func TestCandidate_Admit(t *testing.T) {
	t.Run("should admit a valid shipment in transit", func(t *testing.T) {
		// Given
		candidate := shipment.NewCandidate(format, newResolver(), validFields())

		// When
		s, err := candidate.Admit()

		// Then
		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "S001", candidate.ID())
		assert.Equal(t, "S001", s.ID())
		assert.Equal(t, "Sydney", s.Origin())
		assert.Equal(t, "Melbourne", s.Destination())
		assert.InDelta(t, 12.5, s.Weight(), 1e-9)
		assert.Equal(t, "V001", s.VehicleID())
		assert.Equal(t, "C001", s.CustomerID())
		assert.Equal(t, shipment.InTransit, s.Status())

		_, delivered := s.DeliveredAt()
		assert.False(t, delivered)
	})

	t.Run("should reject an identifier outside the pattern", func(t *testing.T) {
		fields := validFields()
		fields.ID = "SHP1"

		_, err := shipment.NewCandidate(format, newResolver(), fields).Admit()

		require.ErrorIs(t, err, errs.ErrInvalidIdentifierFormat)
	})

	t.Run("should reject invalid fields by name", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*shipment.Fields)
			param  string
		}{
			{"empty origin", func(f *shipment.Fields) { f.Origin = "" }, shipment.FieldOrigin},
			{"empty destination", func(f *shipment.Fields) { f.Destination = "" }, shipment.FieldDestination},
			{"zero weight", func(f *shipment.Fields) { f.Weight = "0" }, shipment.FieldWeight},
			{"negative weight", func(f *shipment.Fields) { f.Weight = "-3" }, shipment.FieldWeight},
			{"text weight", func(f *shipment.Fields) { f.Weight = "heavy" }, shipment.FieldWeight},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fields := validFields()
				tt.mutate(&fields)

				_, err := shipment.NewCandidate(format, newResolver(), fields).Admit()

				var invalid *errs.ValueIsInvalidError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.param, invalid.ParamName)
			})
		}
	})

	t.Run("should reject an unknown vehicle before an unknown customer", func(t *testing.T) {
		fields := validFields()
		fields.VehicleID = "V404"
		fields.CustomerID = "C404"

		_, err := shipment.NewCandidate(format, newResolver(), fields).Admit()

		var unresolved *errs.UnresolvedReferenceError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, shipment.FieldVehicleID, unresolved.ParamName)
		assert.Equal(t, "V404", unresolved.ID)
	})

	t.Run("should reject an unknown customer", func(t *testing.T) {
		fields := validFields()
		fields.CustomerID = "C404"

		_, err := shipment.NewCandidate(format, newResolver(), fields).Admit()

		var unresolved *errs.UnresolvedReferenceError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, shipment.FieldCustomerID, unresolved.ParamName)
	})

	t.Run("should not resolve references when a field is invalid", func(t *testing.T) {
		resolver := newResolver()
		fields := validFields()
		fields.Weight = "0"

		_, err := shipment.NewCandidate(format, resolver, fields).Admit()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, resolver.calls)
	})

	t.Run("should require a resolver", func(t *testing.T) {
		_, err := shipment.NewCandidate(format, nil, validFields()).Admit()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value candidate is rejected", func(t *testing.T) {
		var candidate shipment.Candidate

		_, err := candidate.Admit()

		require.ErrorIs(t, err, shipment.ErrCandidateIsNotConstructed)
	})
}

func TestShipment_MarkDelivered(t *testing.T) {
	at := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	t.Run("first delivery records the time", func(t *testing.T) {
		// Arrange
		s := admit(t)

		// Act
		outcome, err := s.MarkDelivered(at)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, shipment.FirstTimeDelivered, outcome)
		assert.Equal(t, shipment.Delivered, s.Status())

		deliveredAt, ok := s.DeliveredAt()
		require.True(t, ok)
		assert.Equal(t, at, deliveredAt)
	})

	t.Run("second delivery changes nothing", func(t *testing.T) {
		// Arrange
		s := admit(t)
		_, err := s.MarkDelivered(at)
		require.NoError(t, err)

		// Act
		outcome, err := s.MarkDelivered(at.Add(time.Hour))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, shipment.AlreadyDelivered, outcome)
		assert.Equal(t, shipment.Delivered, s.Status())

		deliveredAt, _ := s.DeliveredAt()
		assert.Equal(t, at, deliveredAt)
	})

	t.Run("zero value shipment is rejected", func(t *testing.T) {
		s := &shipment.Shipment{}

		_, err := s.MarkDelivered(at)

		require.True(t, errors.Is(err, shipment.ErrShipmentIsNotConstructed))
	})
}

func TestShipment_Validate(t *testing.T) {
	var nilShipment *shipment.Shipment
	require.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)

	s := admit(t)
	assert.True(t, s.IsEqual(admit(t)))
	assert.False(t, s.IsEqual(nil))
}

func TestShipment_Snapshot(t *testing.T) {
	at := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	t.Run("later delivery does not reach the snapshot", func(t *testing.T) {
		// Arrange
		s := admit(t)
		snapshot := s.Snapshot()

		// Act
		_, err := s.MarkDelivered(at)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, snapshot.Status())
		_, ok := snapshot.DeliveredAt()
		assert.False(t, ok)
		assert.True(t, snapshot.IsEqual(s))
		require.NoError(t, snapshot.Validate())
	})

	t.Run("delivery time is copied", func(t *testing.T) {
		// Arrange
		s := admit(t)
		_, err := s.MarkDelivered(at)
		require.NoError(t, err)

		// Act
		snapshot := s.Snapshot()

		// Assert
		assert.Equal(t, shipment.Delivered, snapshot.Status())
		deliveredAt, ok := snapshot.DeliveredAt()
		require.True(t, ok)
		assert.Equal(t, at, deliveredAt)
	})
}
