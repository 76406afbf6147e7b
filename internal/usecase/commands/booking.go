package commands

import (
	"context"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/lot"
	"parkeaze/internal/infra"
	"parkeaze/internal/pkg/clock"
	"parkeaze/internal/pkg/errs"
	"parkeaze/internal/usecase/queries"
	"parkeaze/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLotNotFound          = errs.New("lot not found")
	ErrLotNotVerified       = errs.New("lot verification is not completed")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrWrongEntryCode       = errs.New("wrong entry token")
	ErrWrongExitCode        = errs.New("wrong exit token")
	ErrNotBookingActor      = errs.New("booking does not belong to actor")
	ErrCodeGeneration       = errs.New("failed to generate a unique token")
	ErrDatabaseOperation    = errs.New("database operation failed")
	ErrBookingReadAfterWrite = errs.New("failed to read booking after write")
)

// codeAttempts bounds regeneration when a freshly drawn token collides
// with one held by a currently unredeemed booking.
const codeAttempts = 5

type CreateBookingInput struct {
	LotID         uuid.UUID
	VehicleType   string
	VehicleNumber string
	DurationHours *float64
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, seekerID uuid.UUID) (*queries.BookingView, error)
	RedeemEntryCode(ctx context.Context, code int) (*queries.BookingView, error)
	RedeemExitCode(ctx context.Context, code int) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, seekerID uuid.UUID) (*queries.BookingView, error) {
	vehicleType, err := lot.NewVehicleType(in.VehicleType)
	if err != nil {
		return nil, err
	}

	l, err := c.uow.Reads().LotByID(ctx, in.LotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !l.IsVerified() {
		return nil, ErrLotNotVerified
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var b *booking.Booking
		var derr error

		if l.Staffed() {
			entryCode, exitCode, cerr := c.mintCodes(ctx, tx)
			if cerr != nil {
				return cerr
			}
			b, derr = booking.NewStaffedBooking(seekerID, l, vehicleType, in.VehicleNumber, entryCode, exitCode)
		} else {
			var duration float64
			if in.DurationHours != nil {
				duration = *in.DurationHours
			}
			b, derr = booking.NewTimedBooking(seekerID, l, vehicleType, in.VehicleNumber, duration, c.clock.Now())
		}
		if derr != nil {
			return derr
		}

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReadAfterWrite)
	}
	return view, nil
}

// mintCodes draws an entry/exit pair, regenerating any code that is still
// held by an unredeemed booking so redemption can never match two records.
func (c *bookingCommandsImpl) mintCodes(ctx context.Context, tx shared.Tx) (booking.Code, booking.Code, error) {
	entryCode, err := c.mintCode(ctx, tx)
	if err != nil {
		return booking.Code{}, booking.Code{}, err
	}
	for range codeAttempts {
		exitCode, err := c.mintCode(ctx, tx)
		if err != nil {
			return booking.Code{}, booking.Code{}, err
		}
		if exitCode != entryCode {
			return entryCode, exitCode, nil
		}
	}
	return booking.Code{}, booking.Code{}, ErrCodeGeneration
}

func (c *bookingCommandsImpl) mintCode(ctx context.Context, tx shared.Tx) (booking.Code, error) {
	for range codeAttempts {
		code, err := booking.GenerateCode()
		if err != nil {
			return booking.Code{}, errs.Mark(err, ErrCodeGeneration)
		}
		taken, err := tx.Bookings().UnredeemedCodeExists(ctx, code)
		if err != nil {
			return booking.Code{}, errs.Mark(err, ErrDatabaseOperation)
		}
		if !taken {
			return code, nil
		}
	}
	return booking.Code{}, ErrCodeGeneration
}

func (c *bookingCommandsImpl) RedeemEntryCode(ctx context.Context, code int) (*queries.BookingView, error) {
	entryCode, err := booking.NewCode(code)
	if err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByEntryCodeForUpdate(ctx, entryCode)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrWrongEntryCode
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		if derr = b.RecordEntry(c.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateEntry(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return booking.ErrEntryAlreadyRecorded
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReadAfterWrite)
	}
	return view, nil
}

func (c *bookingCommandsImpl) RedeemExitCode(ctx context.Context, code int) (*queries.BookingView, error) {
	exitCode, err := booking.NewCode(code)
	if err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByExitCodeForUpdate(ctx, exitCode)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrWrongExitCode
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		l, derr := tx.Reads().LotByID(ctx, b.LotID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrLotNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		hourlyRate, derr := l.Rates().HourlyRate(b.VehicleType())
		if derr != nil {
			return derr
		}

		// Settle mutates nothing unless every precondition holds, and the
		// repository writes times, duration, bill and status in a single
		// guarded statement.
		if derr = b.Settle(c.clock.Now(), hourlyRate); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateSettlement(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return booking.ErrExitAlreadyRecorded
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReadAfterWrite)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		if b.SeekerID() != actorID && b.OwnerID() != actorID {
			return ErrNotBookingActor
		}

		if derr = b.Cancel(); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, b); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReadAfterWrite)
	}
	return view, nil
}
