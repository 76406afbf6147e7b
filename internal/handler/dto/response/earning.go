package response

import (
	"time"

	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EarningResponse struct {
	OwnerID       uuid.UUID `json:"owner_id"`
	Day           time.Time `json:"day"`
	TotalBookings int       `json:"total_bookings"`
	DayEarning    float64   `json:"day_earning"`
	AppCommission float64   `json:"app_commission"`
	TotalEarning  float64   `json:"total_earning"`
}

func FromEarningView(view *queries.EarningView) *EarningResponse {
	resp := &EarningResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
