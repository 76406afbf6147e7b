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

type LotReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewLotReadStore(dbtx db.DBTX, logger *slog.Logger) *LotReadStore {
	return &LotReadStore{db: dbtx, logger: logger}
}

const lotViewColumns = `
	id, owner_id, name, address, latitude, longitude, staffed, status,
	verification_stage, allow_two_wheeler, allow_four_wheeler,
	allow_heavy_vehicle, rate_two_wheeler, rate_four_wheeler,
	rate_heavy_vehicle, created_at, updated_at
`

func (s *LotReadStore) FindAll(ctx context.Context) ([]*queries.LotView, error) {
	query := `SELECT ` + lotViewColumns + ` FROM lots ORDER BY created_at DESC`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list lots", err)
	}
	defer rows.Close()

	lots := []*queries.LotView{}
	for rows.Next() {
		view, err := scanLotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan lot row", err)
		}
		lots = append(lots, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate lot rows", err)
	}
	return lots, nil
}

func (s *LotReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*queries.LotView, error) {
	query := `SELECT ` + lotViewColumns + ` FROM lots WHERE owner_id = $1`
	view, err := scanLotView(s.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "lot not found", nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find lot", err)
	}
	return view, nil
}

func scanLotView(row pgx.Row) (*queries.LotView, error) {
	view := &queries.LotView{}
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Address,
		&view.Latitude, &view.Longitude, &view.Staffed, &view.Status,
		&view.VerificationStage, &view.AllowTwoWheeler, &view.AllowFourWheeler,
		&view.AllowHeavyVehicle, &view.RateTwoWheeler, &view.RateFourWheeler,
		&view.RateHeavyVehicle, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
