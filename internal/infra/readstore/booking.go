package readstore

import (
	"context"
	"errors"
	"log/slog"

	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"
	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: dbtx, logger: logger}
}

const bookingViewQuery = `
	SELECT b.id, b.seeker_id, b.lot_id, l.name, b.owner_id,
	       b.flow, b.vehicle_type, b.vehicle_number, b.status,
	       b.entry_code, b.exit_code, b.duration_hours,
	       b.start_time, b.end_time,
	       b.bill_parking_amount, b.bill_platform_fees, b.bill_total_amount,
	       b.created_at, b.updated_at
	FROM bookings b
	JOIN lots l ON l.id = b.lot_id
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindBySeekerID(ctx context.Context, seekerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.list(ctx, `b.seeker_id = $1`, seekerID)
}

func (s *BookingReadStore) FindByLotID(ctx context.Context, lotID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.list(ctx, `b.lot_id = $1`, lotID)
}

func (s *BookingReadStore) list(ctx context.Context, where string, arg any) ([]*queries.BookingListItem, error) {
	query := `
		SELECT b.id, b.lot_id, l.name, b.flow, b.vehicle_type, b.vehicle_number,
		       b.status, b.bill_total_amount, b.created_at
		FROM bookings b
		JOIN lots l ON l.id = b.lot_id
		WHERE ` + where + `
		ORDER BY b.created_at DESC
	`
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		item := &queries.BookingListItem{}
		if err := rows.Scan(
			&item.ID, &item.LotID, &item.LotName, &item.Flow, &item.VehicleType,
			&item.VehicleNumber, &item.Status, &item.TotalAmount, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booking row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate booking rows", err)
	}
	return items, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	var parkingAmount, platformFees, totalAmount *float64

	err := row.Scan(
		&view.ID, &view.SeekerID, &view.LotID, &view.LotName, &view.OwnerID,
		&view.Flow, &view.VehicleType, &view.VehicleNumber, &view.Status,
		&view.EntryCode, &view.ExitCode, &view.DurationHours,
		&view.StartTime, &view.EndTime,
		&parkingAmount, &platformFees, &totalAmount,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if parkingAmount != nil && platformFees != nil && totalAmount != nil {
		view.Bill = &queries.BillView{
			ParkingAmount: *parkingAmount,
			PlatformFees:  *platformFees,
			TotalAmount:   *totalAmount,
		}
	}
	return view, nil
}
