package response

import (
	"time"

	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LotResponse struct {
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

// OwnerLotResponse is the owner dashboard view: the lot plus its booking
// history derived from booking records.
type OwnerLotResponse struct {
	Lot      *LotResponse       `json:"lot"`
	Bookings []*BookingListItem `json:"bookings"`
}

func FromLotView(view *queries.LotView) *LotResponse {
	resp := &LotResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromLotViews(views []*queries.LotView) []*LotResponse {
	resps := make([]*LotResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromLotView(v))
	}
	return resps
}
