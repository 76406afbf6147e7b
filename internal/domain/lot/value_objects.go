package lot

import "errors"

var (
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidStatus      = errors.New("invalid lot status")
	ErrVehicleNotAllowed  = errors.New("vehicle type is not allowed in this lot")
	ErrRateNotConfigured  = errors.New("hourly rate not configured for vehicle type")
	ErrInvalidRate        = errors.New("hourly rate must be positive")
	ErrEmptyLotName       = errors.New("lot name cannot be empty")
	ErrEmptyAddress       = errors.New("address cannot be empty")
)

// AllowList is the per-lot vehicle-type capability set.
type AllowList struct {
	twoWheeler   bool
	fourWheeler  bool
	heavyVehicle bool
}

func NewAllowList(twoWheeler, fourWheeler, heavyVehicle bool) AllowList {
	return AllowList{
		twoWheeler:   twoWheeler,
		fourWheeler:  fourWheeler,
		heavyVehicle: heavyVehicle,
	}
}

func (a AllowList) Allows(vt VehicleType) bool {
	switch vt {
	case VehicleTwoWheeler:
		return a.twoWheeler
	case VehicleFourWheeler:
		return a.fourWheeler
	case VehicleHeavyVehicle:
		return a.heavyVehicle
	default:
		return false
	}
}

func (a AllowList) TwoWheeler() bool   { return a.twoWheeler }
func (a AllowList) FourWheeler() bool  { return a.fourWheeler }
func (a AllowList) HeavyVehicle() bool { return a.heavyVehicle }

// RateTable maps vehicle types to hourly rates. A missing rate is an error
// at lookup time, never treated as zero.
type RateTable struct {
	twoWheeler   *float64
	fourWheeler  *float64
	heavyVehicle *float64
}

func NewRateTable(twoWheeler, fourWheeler, heavyVehicle *float64) (RateTable, error) {
	for _, r := range []*float64{twoWheeler, fourWheeler, heavyVehicle} {
		if r != nil && *r <= 0 {
			return RateTable{}, ErrInvalidRate
		}
	}
	return RateTable{
		twoWheeler:   twoWheeler,
		fourWheeler:  fourWheeler,
		heavyVehicle: heavyVehicle,
	}, nil
}

// ReconstructRateTable rehydrates persisted rates without validation.
func ReconstructRateTable(twoWheeler, fourWheeler, heavyVehicle *float64) RateTable {
	return RateTable{
		twoWheeler:   twoWheeler,
		fourWheeler:  fourWheeler,
		heavyVehicle: heavyVehicle,
	}
}

func (r RateTable) HourlyRate(vt VehicleType) (float64, error) {
	var rate *float64
	switch vt {
	case VehicleTwoWheeler:
		rate = r.twoWheeler
	case VehicleFourWheeler:
		rate = r.fourWheeler
	case VehicleHeavyVehicle:
		rate = r.heavyVehicle
	default:
		return 0, ErrInvalidVehicleType
	}
	if rate == nil {
		return 0, ErrRateNotConfigured
	}
	return *rate, nil
}

func (r RateTable) TwoWheeler() *float64   { return r.twoWheeler }
func (r RateTable) FourWheeler() *float64  { return r.fourWheeler }
func (r RateTable) HeavyVehicle() *float64 { return r.heavyVehicle }

type Location struct {
	latitude  float64
	longitude float64
}

func NewLocation(latitude, longitude float64) Location {
	return Location{latitude: latitude, longitude: longitude}
}

func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }
