package booking

// Flow discriminates the two booking variants explicitly. A timed booking
// is billed upfront for a declared duration; a staffed booking is settled
// from entry/exit code redemption at a lot with on-site personnel.
type Flow string

const (
	FlowTimed   Flow = "timed"
	FlowStaffed Flow = "staffed"
)

func (f Flow) String() string {
	return string(f)
}

func (f Flow) IsValid() bool {
	switch f {
	case FlowTimed, FlowStaffed:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
