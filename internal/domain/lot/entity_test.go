//go:build unit

package lot_test

import (
	"testing"

	"parkeaze/internal/domain/lot"
	"parkeaze/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		ownerID := uuid.New()
		l, err := lot.NewLot(ownerID, "Central Parking", "12 MG Road, Bengaluru", lot.NewLocation(12.9716, 77.5946))
		require.NoError(t, err)
		require.NotNil(t, l)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, ownerID, l.OwnerID())
		assert.Equal(t, lot.StatusClosed, l.Status())
		assert.Equal(t, lot.StagePricingPending, l.Stage())
		assert.False(t, l.IsVerified())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := lot.NewLot(uuid.New(), "  ", "12 MG Road", lot.NewLocation(0, 0))
		require.ErrorIs(t, err, lot.ErrEmptyLotName)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := lot.NewLot(uuid.New(), "Central Parking", "", lot.NewLocation(0, 0))
		require.ErrorIs(t, err, lot.ErrEmptyAddress)
	})
}

func TestVerificationWizard(t *testing.T) {
	t.Run("stages advance in order", func(t *testing.T) {
		l, err := lot.NewLot(uuid.New(), "Central Parking", "12 MG Road", lot.NewLocation(0, 0))
		require.NoError(t, err)

		four := 100.0
		rates, err := lot.NewRateTable(nil, &four, nil)
		require.NoError(t, err)

		l.ConfigurePricing(lot.NewAllowList(false, true, false), rates, true)
		assert.Equal(t, lot.StageDocumentsPending, l.Stage())

		l.MarkDocumentsSubmitted()
		assert.Equal(t, lot.StageBankPending, l.Stage())
		assert.False(t, l.IsVerified())

		l.MarkBankDetailsSubmitted()
		assert.Equal(t, lot.StageCompleted, l.Stage())
		assert.True(t, l.IsVerified())
	})

	t.Run("reconfiguring pricing does not reset the stage", func(t *testing.T) {
		l, err := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, err)
		require.True(t, l.IsVerified())

		two := 25.0
		rates, err := lot.NewRateTable(&two, nil, nil)
		require.NoError(t, err)
		l.ConfigurePricing(lot.NewAllowList(true, false, false), rates, false)

		assert.Equal(t, lot.StageCompleted, l.Stage())
		assert.True(t, l.IsVerified())
	})
}

func TestRateTable(t *testing.T) {
	t.Run("rates must be positive", func(t *testing.T) {
		zero := 0.0
		_, err := lot.NewRateTable(&zero, nil, nil)
		require.ErrorIs(t, err, lot.ErrInvalidRate)

		negative := -10.0
		_, err = lot.NewRateTable(nil, &negative, nil)
		require.ErrorIs(t, err, lot.ErrInvalidRate)
	})

	t.Run("missing rate is an error at lookup", func(t *testing.T) {
		two := 20.0
		rates, err := lot.NewRateTable(&two, nil, nil)
		require.NoError(t, err)

		rate, err := rates.HourlyRate(lot.VehicleTwoWheeler)
		require.NoError(t, err)
		assert.InDelta(t, 20.0, rate, 1e-9)

		_, err = rates.HourlyRate(lot.VehicleFourWheeler)
		require.ErrorIs(t, err, lot.ErrRateNotConfigured)
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		two := 20.0
		rates, err := lot.NewRateTable(&two, &two, &two)
		require.NoError(t, err)

		_, err = rates.HourlyRate(lot.VehicleType("bicycle"))
		require.ErrorIs(t, err, lot.ErrInvalidVehicleType)
	})
}

func TestAllowList(t *testing.T) {
	allow := lot.NewAllowList(true, false, true)

	assert.True(t, allow.Allows(lot.VehicleTwoWheeler))
	assert.False(t, allow.Allows(lot.VehicleFourWheeler))
	assert.True(t, allow.Allows(lot.VehicleHeavyVehicle))
	assert.False(t, allow.Allows(lot.VehicleType("bicycle")))
}
