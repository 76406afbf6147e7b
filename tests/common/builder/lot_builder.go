//go:build unit || e2e

package builder

import (
	"parkeaze/internal/domain/lot"
	reqdto "parkeaze/internal/handler/dto/request"

	"github.com/google/uuid"
)

// LotBuilder assembles lots at any wizard stage. The default is a fully
// verified, open, unstaffed lot pricing all three vehicle types.
type LotBuilder struct {
	OwnerID          uuid.UUID
	Name             string
	Address          string
	Latitude         float64
	Longitude        float64
	Staffed          bool
	Open             bool
	Verified         bool
	RateTwoWheeler   *float64
	RateFourWheeler  *float64
	RateHeavyVehicle *float64
}

func NewLotBuilder() *LotBuilder {
	two := 20.0
	four := 100.0
	heavy := 150.0
	return &LotBuilder{
		OwnerID:          uuid.New(),
		Name:             "Central Parking",
		Address:          "12 MG Road, Bengaluru",
		Latitude:         12.9716,
		Longitude:        77.5946,
		Staffed:          false,
		Open:             true,
		Verified:         true,
		RateTwoWheeler:   &two,
		RateFourWheeler:  &four,
		RateHeavyVehicle: &heavy,
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) WithStaffed() *LotBuilder {
	b.Staffed = true
	return b
}

func (b *LotBuilder) WithRate(vt lot.VehicleType, rate *float64) *LotBuilder {
	switch vt {
	case lot.VehicleTwoWheeler:
		b.RateTwoWheeler = rate
	case lot.VehicleFourWheeler:
		b.RateFourWheeler = rate
	case lot.VehicleHeavyVehicle:
		b.RateHeavyVehicle = rate
	}
	return b
}

func (b *LotBuilder) BuildDomain() (*lot.Lot, error) {
	l, err := lot.NewLot(b.OwnerID, b.Name, b.Address, lot.NewLocation(b.Latitude, b.Longitude))
	if err != nil {
		return nil, err
	}

	allowList := lot.NewAllowList(
		b.RateTwoWheeler != nil,
		b.RateFourWheeler != nil,
		b.RateHeavyVehicle != nil,
	)
	rates, err := lot.NewRateTable(b.RateTwoWheeler, b.RateFourWheeler, b.RateHeavyVehicle)
	if err != nil {
		return nil, err
	}
	l.ConfigurePricing(allowList, rates, b.Staffed)

	if b.Verified {
		l.MarkDocumentsSubmitted()
		l.MarkBankDetailsSubmitted()
	}
	if b.Open {
		l.SetStatus(lot.StatusOpen)
	}
	return l, nil
}

func (b *LotBuilder) BuildSetupLocationRequestDTO() reqdto.SetupLocationRequest {
	return reqdto.SetupLocationRequest{
		Name:      b.Name,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func (b *LotBuilder) BuildConfigurePricingRequestDTO() reqdto.ConfigurePricingRequest {
	return reqdto.ConfigurePricingRequest{
		RateTwoWheeler:   b.RateTwoWheeler,
		RateFourWheeler:  b.RateFourWheeler,
		RateHeavyVehicle: b.RateHeavyVehicle,
		Staffed:          b.Staffed,
	}
}
