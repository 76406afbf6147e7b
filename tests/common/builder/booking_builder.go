//go:build unit || e2e

package builder

import (
	"time"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/lot"
	reqdto "parkeaze/internal/handler/dto/request"
	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SeekerID      uuid.UUID
	Lot           *LotBuilder
	VehicleType   lot.VehicleType
	VehicleNumber string
	DurationHours float64
	EntryCode     int
	ExitCode      int
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SeekerID:      uuid.New(),
		Lot:           NewLotBuilder(),
		VehicleType:   lot.VehicleFourWheeler,
		VehicleNumber: "KA01AB1234",
		DurationHours: 3,
		EntryCode:     1234,
		ExitCode:      5678,
		Now:           time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildTimed() (*booking.Booking, error) {
	l, err := b.Lot.BuildDomain()
	if err != nil {
		return nil, err
	}
	return booking.NewTimedBooking(b.SeekerID, l, b.VehicleType, b.VehicleNumber, b.DurationHours, b.Now)
}

func (b *BookingBuilder) BuildStaffed() (*booking.Booking, error) {
	l, err := b.Lot.WithStaffed().BuildDomain()
	if err != nil {
		return nil, err
	}
	entry, err := booking.NewCode(b.EntryCode)
	if err != nil {
		return nil, err
	}
	exit, err := booking.NewCode(b.ExitCode)
	if err != nil {
		return nil, err
	}
	return booking.NewStaffedBooking(b.SeekerID, l, b.VehicleType, b.VehicleNumber, entry, exit)
}

// BuildView mirrors what the read store returns for a staffed booking that
// has not yet recorded entry.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	entry := b.EntryCode
	exit := b.ExitCode
	return &queries.BookingView{
		ID:            uuid.New(),
		SeekerID:      b.SeekerID,
		LotID:         uuid.New(),
		LotName:       b.Lot.Name,
		OwnerID:       b.Lot.OwnerID,
		Flow:          "staffed",
		VehicleType:   b.VehicleType.String(),
		VehicleNumber: b.VehicleNumber,
		Status:        "active",
		EntryCode:     &entry,
		ExitCode:      &exit,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	duration := b.DurationHours
	return reqdto.CreateBookingRequest{
		LotID:         uuid.New(),
		VehicleType:   b.VehicleType.String(),
		VehicleNumber: b.VehicleNumber,
		DurationHours: &duration,
	}
}
