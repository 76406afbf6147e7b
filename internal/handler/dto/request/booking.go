package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	LotID         uuid.UUID `json:"lot_id" binding:"required"`
	VehicleType   string    `json:"vehicle_type" binding:"required,vehicletype"`
	VehicleNumber string    `json:"vehicle_number" binding:"required"`
	// DurationHours is required for timed lots and ignored for staffed ones.
	DurationHours *float64 `json:"duration_hours,omitempty" binding:"omitempty,gt=0"`
}

type RedeemCodeRequest struct {
	Code int `json:"code" binding:"required,min=1000,max=9999"`
}
