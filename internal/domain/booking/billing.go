package booking

import "errors"

// PlatformFeeRate is the commission taken from the parking amount. It is a
// system-wide constant, not configurable per lot.
const PlatformFeeRate = 0.10

var (
	ErrNonPositiveRate     = errors.New("hourly rate must be positive")
	ErrNonPositiveDuration = errors.New("duration must be positive")
)

// Bill carries the settled amounts for a booking. No rounding is applied;
// display rounding is a presentation concern.
type Bill struct {
	ParkingAmount float64
	PlatformFees  float64
	TotalAmount   float64
}

// ComputeBill derives a bill from an hourly rate and a duration in hours.
// The duration may be fractional when derived from wall-clock entry/exit.
func ComputeBill(hourlyRate, durationHours float64) (Bill, error) {
	if hourlyRate <= 0 {
		return Bill{}, ErrNonPositiveRate
	}
	if durationHours <= 0 {
		return Bill{}, ErrNonPositiveDuration
	}

	parkingAmount := hourlyRate * durationHours
	platformFees := parkingAmount * PlatformFeeRate

	return Bill{
		ParkingAmount: parkingAmount,
		PlatformFees:  platformFees,
		TotalAmount:   parkingAmount + platformFees,
	}, nil
}
