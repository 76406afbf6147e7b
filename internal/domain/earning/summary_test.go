//go:build unit

package earning_test

import (
	"testing"
	"time"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/earning"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	ownerID := uuid.New()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("folds settled bills", func(t *testing.T) {
		bills := []booking.Bill{
			{ParkingAmount: 90, PlatformFees: 10, TotalAmount: 100},
			{ParkingAmount: 180, PlatformFees: 20, TotalAmount: 200},
			{ParkingAmount: 270, PlatformFees: 30, TotalAmount: 300},
		}

		actual := earning.Summarize(ownerID, day, bills)
		expected := earning.Summary{
			OwnerID:       ownerID,
			Day:           day,
			TotalBookings: 3,
			DayEarning:    600,
			AppCommission: 60,
			TotalEarning:  540,
		}

		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("day with no completed bookings", func(t *testing.T) {
		actual := earning.Summarize(ownerID, day, nil)

		assert.Equal(t, 0, actual.TotalBookings)
		assert.Zero(t, actual.DayEarning)
		assert.Zero(t, actual.AppCommission)
		assert.Zero(t, actual.TotalEarning)
	})

	t.Run("single booking", func(t *testing.T) {
		actual := earning.Summarize(ownerID, day, []booking.Bill{
			{ParkingAmount: 300, PlatformFees: 30, TotalAmount: 330},
		})

		assert.Equal(t, 1, actual.TotalBookings)
		assert.InDelta(t, 330.0, actual.DayEarning, 1e-9)
		assert.InDelta(t, 30.0, actual.AppCommission, 1e-9)
		assert.InDelta(t, 300.0, actual.TotalEarning, 1e-9)
	})
}

func TestNewSummary(t *testing.T) {
	ownerID := uuid.New()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	actual := earning.NewSummary(ownerID, day, 2, 250, 25)

	assert.InDelta(t, 225.0, actual.TotalEarning, 1e-9)
	assert.Equal(t, 2, actual.TotalBookings)
}

func TestDayWindow(t *testing.T) {
	t.Run("bounds of the local calendar day", func(t *testing.T) {
		now := time.Date(2025, 6, 15, 14, 37, 12, 0, time.UTC)

		from, to := earning.DayWindow(now)

		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999_000_000, time.UTC), to)
	})

	t.Run("keeps the location of the input", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		now := time.Date(2025, 6, 15, 0, 10, 0, 0, loc)

		from, to := earning.DayWindow(now)

		assert.Equal(t, loc, from.Location())
		assert.Equal(t, 15, from.Day())
		assert.Equal(t, 15, to.Day())
	})
}
