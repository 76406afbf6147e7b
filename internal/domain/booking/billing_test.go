//go:build unit

package booking_test

import (
	"testing"

	"parkeaze/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBill(t *testing.T) {
	t.Run("three hours at hundred per hour", func(t *testing.T) {
		bill, err := booking.ComputeBill(100, 3)
		require.NoError(t, err)

		assert.InDelta(t, 300.0, bill.ParkingAmount, 1e-9)
		assert.InDelta(t, 30.0, bill.PlatformFees, 1e-9)
		assert.InDelta(t, 330.0, bill.TotalAmount, 1e-9)
	})

	t.Run("two hours at fifty per hour", func(t *testing.T) {
		bill, err := booking.ComputeBill(50, 2)
		require.NoError(t, err)

		assert.InDelta(t, 100.0, bill.ParkingAmount, 1e-9)
		assert.InDelta(t, 10.0, bill.PlatformFees, 1e-9)
		assert.InDelta(t, 110.0, bill.TotalAmount, 1e-9)
	})

	t.Run("fractional duration", func(t *testing.T) {
		bill, err := booking.ComputeBill(100, 1.5)
		require.NoError(t, err)

		assert.InDelta(t, 150.0, bill.ParkingAmount, 1e-9)
		assert.InDelta(t, 15.0, bill.PlatformFees, 1e-9)
		assert.InDelta(t, 165.0, bill.TotalAmount, 1e-9)
	})

	t.Run("total is parking amount plus fees", func(t *testing.T) {
		bill, err := booking.ComputeBill(73.5, 2.25)
		require.NoError(t, err)

		assert.InDelta(t, bill.ParkingAmount+bill.PlatformFees, bill.TotalAmount, 1e-9)
		assert.InDelta(t, bill.ParkingAmount*booking.PlatformFeeRate, bill.PlatformFees, 1e-9)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			rate     float64
			duration float64
			errIs    error
		}{
			{name: "zero rate", rate: 0, duration: 2, errIs: booking.ErrNonPositiveRate},
			{name: "negative rate", rate: -10, duration: 2, errIs: booking.ErrNonPositiveRate},
			{name: "zero duration", rate: 100, duration: 0, errIs: booking.ErrNonPositiveDuration},
			{name: "negative duration", rate: 100, duration: -1, errIs: booking.ErrNonPositiveDuration},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.ComputeBill(c.rate, c.duration)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
