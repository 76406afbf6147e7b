package commands

import (
	"context"

	"parkeaze/internal/domain/earning"
	"parkeaze/internal/infra"
	"parkeaze/internal/pkg/clock"
	"parkeaze/internal/pkg/errs"
	"parkeaze/internal/usecase/queries"
	"parkeaze/internal/usecase/shared"

	"github.com/google/uuid"
)

type EarningCommands interface {
	CollectToday(ctx context.Context, ownerID uuid.UUID) (*queries.EarningView, error)
}

type earningCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEarningCommands(uow shared.UnitOfWork, clk clock.Clock) EarningCommands {
	return &earningCommandsImpl{uow: uow, clock: clk}
}

// CollectToday aggregates the owner's billed bookings for the current day
// and persists the summary, overwriting any earlier snapshot for that day.
func (c *earningCommandsImpl) CollectToday(ctx context.Context, ownerID uuid.UUID) (*queries.EarningView, error) {
	u, err := c.uow.Reads().UserByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !u.IsOwner() {
		return nil, ErrNotOwner
	}

	from, to := earning.DayWindow(c.clock.Now())

	var summary earning.Summary
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, derr := tx.Earnings().AggregateOwnerDay(ctx, ownerID, from, to)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		summary = earning.NewSummary(ownerID, from, agg.TotalBookings, agg.DayEarning, agg.AppCommission)
		if derr = tx.Earnings().Upsert(ctx, summary); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.EarningView{
		OwnerID:       summary.OwnerID,
		Day:           summary.Day,
		TotalBookings: summary.TotalBookings,
		DayEarning:    summary.DayEarning,
		AppCommission: summary.AppCommission,
		TotalEarning:  summary.TotalEarning,
	}, nil
}
