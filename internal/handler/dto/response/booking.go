package response

import (
	"time"

	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BillResponse struct {
	ParkingAmount float64 `json:"parking_amount"`
	PlatformFees  float64 `json:"platform_fees"`
	TotalAmount   float64 `json:"total_amount"`
}

type BookingResponse struct {
	ID            uuid.UUID     `json:"id"`
	SeekerID      uuid.UUID     `json:"seeker_id"`
	LotID         uuid.UUID     `json:"lot_id"`
	LotName       string        `json:"lot_name"`
	OwnerID       uuid.UUID     `json:"owner_id"`
	Flow          string        `json:"flow"`
	VehicleType   string        `json:"vehicle_type"`
	VehicleNumber string        `json:"vehicle_number"`
	Status        string        `json:"status"`
	EntryCode     *int          `json:"entry_code,omitempty"`
	ExitCode      *int          `json:"exit_code,omitempty"`
	DurationHours *float64      `json:"duration_hours,omitempty"`
	StartTime     *time.Time    `json:"start_time,omitempty"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	Bill          *BillResponse `json:"bill,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListItem {
	resps := make([]*BookingListItem, 0, len(items))
	for _, item := range items {
		resp := &BookingListItem{}
		_ = copier.Copy(resp, item)
		resps = append(resps, resp)
	}
	return resps
}
