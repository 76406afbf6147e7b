package writerepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/lot"
	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `
	id, seeker_id, lot_id, owner_id, flow, vehicle_type, vehicle_number,
	status, entry_code, exit_code, duration_hours, start_time, end_time,
	bill_parking_amount, bill_platform_fees, bill_total_amount,
	created_at, updated_at
`

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: dbtx, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, seeker_id, lot_id, owner_id, flow, vehicle_type, vehicle_number,
			status, entry_code, exit_code, duration_hours, start_time, end_time,
			bill_parking_amount, bill_platform_fees, bill_total_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	var entryCode, exitCode *int
	if c := b.EntryCode(); c != nil {
		v := c.Value()
		entryCode = &v
	}
	if c := b.ExitCode(); c != nil {
		v := c.Value()
		exitCode = &v
	}
	var parkingAmount, platformFees, totalAmount *float64
	if bill := b.Bill(); bill != nil {
		parkingAmount = &bill.ParkingAmount
		platformFees = &bill.PlatformFees
		totalAmount = &bill.TotalAmount
	}

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.SeekerID(), b.LotID(), b.OwnerID(),
		b.Flow().String(), b.VehicleType().String(), b.VehicleNumber(),
		b.Status().String(), entryCode, exitCode,
		b.DurationHours(), b.StartTime(), b.EndTime(),
		parkingAmount, platformFees, totalAmount,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *BookingRepository) FindByEntryCodeForUpdate(ctx context.Context, code booking.Code) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE entry_code = $1 AND status = 'active' FOR UPDATE`
	return r.findOne(ctx, query, code.Value())
}

func (r *BookingRepository) FindByExitCodeForUpdate(ctx context.Context, code booking.Code) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE exit_code = $1 AND status = 'active' FOR UPDATE`
	return r.findOne(ctx, query, code.Value())
}

func (r *BookingRepository) findOne(ctx context.Context, query string, arg any) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, query, arg)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, kindOf(err), "failed to find booking", err)
	}
	return b, nil
}

// UpdateEntry records the entry time only while it is still unset, so a
// concurrent redemption of the same code cannot overwrite it.
func (r *BookingRepository) UpdateEntry(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET start_time = $2, updated_at = now()
		WHERE id = $1 AND status = 'active' AND start_time IS NULL
	`
	tag, err := r.db.Exec(ctx, query, b.ID(), b.StartTime())
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to record entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "entry already recorded", nil)
	}
	return nil
}

// UpdateSettlement writes end time, duration, bill and final status in one
// guarded statement so a booking can never be half settled.
func (r *BookingRepository) UpdateSettlement(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET end_time = $2,
		    duration_hours = $3,
		    bill_parking_amount = $4,
		    bill_platform_fees = $5,
		    bill_total_amount = $6,
		    status = $7,
		    updated_at = now()
		WHERE id = $1 AND status = 'active' AND end_time IS NULL
	`
	bill := b.Bill()
	tag, err := r.db.Exec(ctx, query,
		b.ID(), b.EndTime(), b.DurationHours(),
		bill.ParkingAmount, bill.PlatformFees, bill.TotalAmount,
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to settle booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "exit already recorded", nil)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, b.ID(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) UnredeemedCodeExists(ctx context.Context, code booking.Code) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE status = 'active' AND (entry_code = $1 OR exit_code = $1)
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, code.Value()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(r.logger, kindOf(err), "failed to check code usage", err)
	}
	return exists, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, seekerID, lotID, ownerID                uuid.UUID
		flow, vehicleType, vehicleNumber, status    string
		entryCode, exitCode                         *int
		durationHours                               *float64
		startTime, endTime                          *time.Time
		parkingAmount, platformFees, totalAmount    *float64
		createdAt, updatedAt                        time.Time
	)
	err := row.Scan(
		&id, &seekerID, &lotID, &ownerID, &flow, &vehicleType, &vehicleNumber,
		&status, &entryCode, &exitCode, &durationHours, &startTime, &endTime,
		&parkingAmount, &platformFees, &totalAmount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var entryC, exitC *booking.Code
	if entryCode != nil {
		c, cerr := booking.NewCode(*entryCode)
		if cerr != nil {
			return nil, cerr
		}
		entryC = &c
	}
	if exitCode != nil {
		c, cerr := booking.NewCode(*exitCode)
		if cerr != nil {
			return nil, cerr
		}
		exitC = &c
	}
	var bill *booking.Bill
	if parkingAmount != nil && platformFees != nil && totalAmount != nil {
		bill = &booking.Bill{
			ParkingAmount: *parkingAmount,
			PlatformFees:  *platformFees,
			TotalAmount:   *totalAmount,
		}
	}

	return booking.ReconstructBooking(
		id, seekerID, lotID, ownerID,
		booking.Flow(flow),
		lot.VehicleType(vehicleType),
		vehicleNumber,
		booking.Status(status),
		entryC, exitC,
		durationHours, startTime, endTime,
		bill,
		createdAt, updatedAt,
	), nil
}
