package writerepo

import (
	"context"
	"log/slog"

	"parkeaze/internal/domain/lot"
	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"
)

type LotRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewLotRepository(dbtx db.DBTX, logger *slog.Logger) *LotRepository {
	return &LotRepository{db: dbtx, logger: logger}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	const query = `
		INSERT INTO lots (
			id, owner_id, name, address, latitude, longitude,
			staffed, status, verification_stage,
			allow_two_wheeler, allow_four_wheeler, allow_heavy_vehicle,
			rate_two_wheeler, rate_four_wheeler, rate_heavy_vehicle
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	allowList := l.AllowList()
	rates := l.Rates()

	_, err := r.db.Exec(ctx, query,
		l.ID(), l.OwnerID(), l.Name(), l.Address(),
		l.Location().Latitude(), l.Location().Longitude(),
		l.Staffed(), l.Status().String(), string(l.Stage()),
		allowList.TwoWheeler(), allowList.FourWheeler(), allowList.HeavyVehicle(),
		rates.TwoWheeler(), rates.FourWheeler(), rates.HeavyVehicle(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to create lot", err)
	}
	return nil
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	const query = `
		UPDATE lots
		SET name = $2,
		    address = $3,
		    latitude = $4,
		    longitude = $5,
		    staffed = $6,
		    status = $7,
		    verification_stage = $8,
		    allow_two_wheeler = $9,
		    allow_four_wheeler = $10,
		    allow_heavy_vehicle = $11,
		    rate_two_wheeler = $12,
		    rate_four_wheeler = $13,
		    rate_heavy_vehicle = $14,
		    updated_at = now()
		WHERE id = $1
	`
	allowList := l.AllowList()
	rates := l.Rates()

	tag, err := r.db.Exec(ctx, query,
		l.ID(), l.Name(), l.Address(),
		l.Location().Latitude(), l.Location().Longitude(),
		l.Staffed(), l.Status().String(), string(l.Stage()),
		allowList.TwoWheeler(), allowList.FourWheeler(), allowList.HeavyVehicle(),
		rates.TwoWheeler(), rates.FourWheeler(), rates.HeavyVehicle(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to update lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "lot not found", nil)
	}
	return nil
}
