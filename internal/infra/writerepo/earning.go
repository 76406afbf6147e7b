package writerepo

import (
	"context"
	"log/slog"
	"time"

	"parkeaze/internal/domain/earning"
	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"
	"parkeaze/internal/usecase/shared"

	"github.com/google/uuid"
)

type EarningRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewEarningRepository(dbtx db.DBTX, logger *slog.Logger) *EarningRepository {
	return &EarningRepository{db: dbtx, logger: logger}
}

// AggregateOwnerDay folds the owner's completed, fully billed bookings
// created within the window. A window with no bookings yields zeros.
func (r *EarningRepository) AggregateOwnerDay(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (shared.DayAggregate, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(bill_total_amount), 0),
		       COALESCE(SUM(bill_platform_fees), 0)
		FROM bookings
		WHERE owner_id = $1
		  AND status = 'completed'
		  AND bill_total_amount IS NOT NULL
		  AND created_at BETWEEN $2 AND $3
	`
	var agg shared.DayAggregate
	err := r.db.QueryRow(ctx, query, ownerID, from, to).
		Scan(&agg.TotalBookings, &agg.DayEarning, &agg.AppCommission)
	if err != nil {
		return shared.DayAggregate{}, infra.WrapRepoErr(r.logger, kindOf(err), "failed to aggregate earnings", err)
	}
	return agg, nil
}

func (r *EarningRepository) Upsert(ctx context.Context, s earning.Summary) error {
	const query = `
		INSERT INTO earnings (owner_id, day, total_bookings, day_earning, app_commission, total_earning)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id, day) DO UPDATE
		SET total_bookings = EXCLUDED.total_bookings,
		    day_earning = EXCLUDED.day_earning,
		    app_commission = EXCLUDED.app_commission,
		    total_earning = EXCLUDED.total_earning,
		    updated_at = now()
	`
	_, err := r.db.Exec(ctx, query,
		s.OwnerID, s.Day, s.TotalBookings, s.DayEarning, s.AppCommission, s.TotalEarning,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to upsert earnings", err)
	}
	return nil
}
