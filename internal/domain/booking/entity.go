package booking

import (
	"errors"
	"strings"
	"time"

	"parkeaze/internal/domain/lot"

	"github.com/google/uuid"
)

var (
	ErrEmptyVehicleNumber   = errors.New("vehicle number is required")
	ErrDurationRequired     = errors.New("parking duration is required")
	ErrNotStaffedFlow       = errors.New("booking does not use entry/exit codes")
	ErrEntryAlreadyRecorded = errors.New("entry time has already been recorded")
	ErrExitAlreadyRecorded  = errors.New("exit time has already been recorded")
	ErrEntryNotRecorded     = errors.New("cannot record exit before entry")
	ErrNotActive            = errors.New("booking is not active")
	ErrCancelAfterEntry     = errors.New("booking cannot be cancelled after entry")
)

// Booking is the central entity of the platform: one parking session,
// either pre-billed for a fixed duration or settled from entry/exit
// code redemption. The flow is an explicit discriminator; the two
// variants are never inferred from which optional fields happen to be set.
type Booking struct {
	id            uuid.UUID
	seekerID      uuid.UUID
	lotID         uuid.UUID
	ownerID       uuid.UUID
	flow          Flow
	vehicleType   lot.VehicleType
	vehicleNumber string
	status        Status
	entryCode     *Code
	exitCode      *Code
	durationHours *float64
	startTime     *time.Time
	endTime       *time.Time
	bill          *Bill
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTimedBooking creates a pre-paid fixed-duration booking at an unstaffed
// lot. The bill is computed immediately and the booking is persisted
// directly in completed status.
func NewTimedBooking(
	seekerID uuid.UUID,
	l *lot.Lot,
	vehicleType lot.VehicleType,
	vehicleNumber string,
	durationHours float64,
	now time.Time,
) (*Booking, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if vehicleNumber == "" {
		return nil, ErrEmptyVehicleNumber
	}
	if l.Status() != lot.StatusOpen {
		return nil, lot.ErrLotClosed
	}
	if !l.AllowList().Allows(vehicleType) {
		return nil, lot.ErrVehicleNotAllowed
	}
	if durationHours <= 0 {
		return nil, ErrDurationRequired
	}

	hourlyRate, err := l.Rates().HourlyRate(vehicleType)
	if err != nil {
		return nil, err
	}
	bill, err := ComputeBill(hourlyRate, durationHours)
	if err != nil {
		return nil, err
	}

	start := now
	end := start.Add(time.Duration(durationHours * float64(time.Hour)))
	duration := durationHours

	return &Booking{
		id:            uuid.New(),
		seekerID:      seekerID,
		lotID:         l.ID(),
		ownerID:       l.OwnerID(),
		flow:          FlowTimed,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		status:        StatusCompleted,
		durationHours: &duration,
		startTime:     &start,
		endTime:       &end,
		bill:          &bill,
	}, nil
}

// NewStaffedBooking creates a token-based session at a staffed lot. Billing
// is deferred until the exit code is redeemed. The codes are minted by the
// caller so uniqueness against unredeemed codes can be enforced there.
func NewStaffedBooking(
	seekerID uuid.UUID,
	l *lot.Lot,
	vehicleType lot.VehicleType,
	vehicleNumber string,
	entryCode, exitCode Code,
) (*Booking, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if vehicleNumber == "" {
		return nil, ErrEmptyVehicleNumber
	}
	if l.Status() != lot.StatusOpen {
		return nil, lot.ErrLotClosed
	}
	if !l.AllowList().Allows(vehicleType) {
		return nil, lot.ErrVehicleNotAllowed
	}
	// The rate must be configured upfront even though billing happens at
	// exit, so a misconfigured lot is rejected before a vehicle is inside.
	if _, err := l.Rates().HourlyRate(vehicleType); err != nil {
		return nil, err
	}

	return &Booking{
		id:            uuid.New(),
		seekerID:      seekerID,
		lotID:         l.ID(),
		ownerID:       l.OwnerID(),
		flow:          FlowStaffed,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		status:        StatusActive,
		entryCode:     &entryCode,
		exitCode:      &exitCode,
	}, nil
}

func ReconstructBooking(
	id, seekerID, lotID, ownerID uuid.UUID,
	flow Flow,
	vehicleType lot.VehicleType,
	vehicleNumber string,
	status Status,
	entryCode, exitCode *Code,
	durationHours *float64,
	startTime, endTime *time.Time,
	bill *Bill,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		seekerID:      seekerID,
		lotID:         lotID,
		ownerID:       ownerID,
		flow:          flow,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		status:        status,
		entryCode:     entryCode,
		exitCode:      exitCode,
		durationHours: durationHours,
		startTime:     startTime,
		endTime:       endTime,
		bill:          bill,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// RecordEntry marks the vehicle as inside the lot. Valid exactly once, on
// an active staffed booking.
func (b *Booking) RecordEntry(now time.Time) error {
	if b.flow != FlowStaffed {
		return ErrNotStaffedFlow
	}
	if b.status != StatusActive {
		return ErrNotActive
	}
	if b.startTime != nil {
		return ErrEntryAlreadyRecorded
	}

	start := now
	b.startTime = &start
	return nil
}

// Settle finalizes a staffed booking: records the exit, derives the
// fractional wall-clock duration, computes the bill and completes the
// booking. Either everything applies or nothing does.
func (b *Booking) Settle(now time.Time, hourlyRate float64) error {
	if b.flow != FlowStaffed {
		return ErrNotStaffedFlow
	}
	if b.status != StatusActive {
		return ErrNotActive
	}
	if b.endTime != nil {
		return ErrExitAlreadyRecorded
	}
	if b.startTime == nil {
		return ErrEntryNotRecorded
	}

	durationHours := now.Sub(*b.startTime).Hours()
	bill, err := ComputeBill(hourlyRate, durationHours)
	if err != nil {
		return err
	}

	end := now
	b.endTime = &end
	b.durationHours = &durationHours
	b.bill = &bill
	b.status = StatusCompleted
	return nil
}

// Cancel abandons a booking. Only active bookings can be cancelled, and
// only before an entry has been recorded.
func (b *Booking) Cancel() error {
	if b.status != StatusActive {
		return ErrNotActive
	}
	if b.startTime != nil {
		return ErrCancelAfterEntry
	}

	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool    { return b.status == StatusActive }
func (b *Booking) IsCompleted() bool { return b.status == StatusCompleted }

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) SeekerID() uuid.UUID          { return b.seekerID }
func (b *Booking) LotID() uuid.UUID             { return b.lotID }
func (b *Booking) OwnerID() uuid.UUID           { return b.ownerID }
func (b *Booking) Flow() Flow                   { return b.flow }
func (b *Booking) VehicleType() lot.VehicleType { return b.vehicleType }
func (b *Booking) VehicleNumber() string        { return b.vehicleNumber }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) EntryCode() *Code             { return b.entryCode }
func (b *Booking) ExitCode() *Code              { return b.exitCode }
func (b *Booking) DurationHours() *float64      { return b.durationHours }
func (b *Booking) StartTime() *time.Time        { return b.startTime }
func (b *Booking) EndTime() *time.Time          { return b.endTime }
func (b *Booking) Bill() *Bill                  { return b.bill }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
