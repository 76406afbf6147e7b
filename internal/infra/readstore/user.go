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

type UserReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{db: dbtx, logger: logger}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, user_name, phone_number, role, created_at
		FROM users
		WHERE id = $1
	`
	view := &queries.UserView{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserName, &view.PhoneNumber, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find user", err)
	}
	return view, nil
}
