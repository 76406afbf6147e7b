package lot

type VehicleType string

const (
	VehicleTwoWheeler   VehicleType = "two-wheeler"
	VehicleFourWheeler  VehicleType = "four-wheeler"
	VehicleHeavyVehicle VehicleType = "heavy-vehicle"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTwoWheeler, VehicleFourWheeler, VehicleHeavyVehicle:
		return true
	default:
		return false
	}
}

func NewVehicleType(s string) (VehicleType, error) {
	vt := VehicleType(s)
	if !vt.IsValid() {
		return "", ErrInvalidVehicleType
	}
	return vt, nil
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// VerificationStage tracks the owner onboarding wizard. Each step of the
// wizard advances the stage; bookings are only accepted once completed.
type VerificationStage string

const (
	StagePricingPending   VerificationStage = "pricing-pending"
	StageDocumentsPending VerificationStage = "documents-pending"
	StageBankPending      VerificationStage = "bank-details-pending"
	StageCompleted        VerificationStage = "completed"
)

func (s VerificationStage) String() string {
	return string(s)
}

func (s VerificationStage) IsValid() bool {
	switch s {
	case StagePricingPending, StageDocumentsPending, StageBankPending, StageCompleted:
		return true
	default:
		return false
	}
}
