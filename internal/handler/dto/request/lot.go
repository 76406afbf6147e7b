package request

type SetupLocationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// ConfigurePricingRequest carries one nullable rate per vehicle type; a
// present rate both allows the type and prices it.
type ConfigurePricingRequest struct {
	RateTwoWheeler   *float64 `json:"rate_two_wheeler,omitempty" binding:"omitempty,gt=0"`
	RateFourWheeler  *float64 `json:"rate_four_wheeler,omitempty" binding:"omitempty,gt=0"`
	RateHeavyVehicle *float64 `json:"rate_heavy_vehicle,omitempty" binding:"omitempty,gt=0"`
	Staffed          bool     `json:"staffed"`
}

type SubmitDocumentsRequest struct {
	AadhaarNumber string `json:"aadhaar_number" binding:"required,len=12,numeric"`
}

type SubmitBankDetailsRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IFSCCode      string `json:"ifsc_code" binding:"required"`
}

type SetLotStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}
