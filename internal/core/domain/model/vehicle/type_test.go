package vehicle_test

import (
	"testing"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Run("should parse every admissible type", func(t *testing.T) {
		for _, want := range vehicle.Types() {
			got, err := vehicle.ParseType(want.String())

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		for _, s := range []string{"truck", "VAN", "car ", "", "Bus", "Unknown"} {
			got, err := vehicle.ParseType(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "type %q", s)
			assert.Equal(t, vehicle.UnknownType, got)

			var invalid *errs.ValueIsInvalidError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, vehicle.FieldType, invalid.ParamName)
		}
	})
}

func TestType_Validate(t *testing.T) {
	require.NoError(t, vehicle.Truck.Validate())
	require.NoError(t, vehicle.Van.Validate())
	require.NoError(t, vehicle.Car.Validate())

	require.Error(t, vehicle.UnknownType.Validate())
	require.Error(t, vehicle.Type(42).Validate())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "Truck", vehicle.Truck.String())
	assert.Equal(t, "Van", vehicle.Van.String())
	assert.Equal(t, "Car", vehicle.Car.String())
	assert.Equal(t, "Unknown", vehicle.UnknownType.String())
	assert.Equal(t, "Unknown", vehicle.Type(-1).String())
}
