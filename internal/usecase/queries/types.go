package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for the read side)

type BillView struct {
	ParkingAmount float64 `json:"parking_amount"`
	PlatformFees  float64 `json:"platform_fees"`
	TotalAmount   float64 `json:"total_amount"`
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	SeekerID      uuid.UUID  `json:"seeker_id"`
	LotID         uuid.UUID  `json:"lot_id"`
	LotName       string     `json:"lot_name"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Flow          string     `json:"flow"`
	VehicleType   string     `json:"vehicle_type"`
	VehicleNumber string     `json:"vehicle_number"`
	Status        string     `json:"status"`
	EntryCode     *int       `json:"entry_code,omitempty"`
	ExitCode      *int       `json:"exit_code,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Bill          *BillView  `json:"bill,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	LotID         uuid.UUID `json:"lot_id"`
	LotName       string    `json:"lot_name"`
	Flow          string    `json:"flow"`
	VehicleType   string    `json:"vehicle_type"`
	VehicleNumber string    `json:"vehicle_number"`
	Status        string    `json:"status"`
	TotalAmount   *float64  `json:"total_amount,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type LotView struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Staffed           bool      `json:"staffed"`
	Status            string    `json:"status"`
	VerificationStage string    `json:"verification_stage"`
	AllowTwoWheeler   bool      `json:"allow_two_wheeler"`
	AllowFourWheeler  bool      `json:"allow_four_wheeler"`
	AllowHeavyVehicle bool      `json:"allow_heavy_vehicle"`
	RateTwoWheeler    *float64  `json:"rate_two_wheeler,omitempty"`
	RateFourWheeler   *float64  `json:"rate_four_wheeler,omitempty"`
	RateHeavyVehicle  *float64  `json:"rate_heavy_vehicle,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type EarningView struct {
	OwnerID       uuid.UUID `json:"owner_id"`
	Day           time.Time `json:"day"`
	TotalBookings int       `json:"total_bookings"`
	DayEarning    float64   `json:"day_earning"`
	AppCommission float64   `json:"app_commission"`
	TotalEarning  float64   `json:"total_earning"`
}
