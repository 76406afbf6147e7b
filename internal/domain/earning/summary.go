package earning

import (
	"time"

	"parkeaze/internal/domain/booking"

	"github.com/google/uuid"
)

// Summary is the daily earnings rollup for one owner. It is recomputed on
// demand from completed bookings and upserted keyed on (owner, day), so
// repeating the computation overwrites rather than accumulates.
type Summary struct {
	OwnerID       uuid.UUID
	Day           time.Time
	TotalBookings int
	DayEarning    float64
	AppCommission float64
	TotalEarning  float64
}

func NewSummary(ownerID uuid.UUID, day time.Time, totalBookings int, dayEarning, appCommission float64) Summary {
	return Summary{
		OwnerID:       ownerID,
		Day:           day,
		TotalBookings: totalBookings,
		DayEarning:    dayEarning,
		AppCommission: appCommission,
		TotalEarning:  dayEarning - appCommission,
	}
}

// Summarize folds settled bills into a summary. The SQL aggregate in the
// earnings repository mirrors this arithmetic.
func Summarize(ownerID uuid.UUID, day time.Time, bills []booking.Bill) Summary {
	var dayEarning, appCommission float64
	for _, b := range bills {
		dayEarning += b.TotalAmount
		appCommission += b.PlatformFees
	}
	return NewSummary(ownerID, day, len(bills), dayEarning, appCommission)
}

// DayWindow returns the inclusive local calendar-day bounds around t.
func DayWindow(t time.Time) (startOfDay, endOfDay time.Time) {
	year, month, day := t.Date()
	startOfDay = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	endOfDay = time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
	return startOfDay, endOfDay
}
