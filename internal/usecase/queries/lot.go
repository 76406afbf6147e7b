package queries

import (
	"context"

	"github.com/google/uuid"
)

type LotQueries interface {
	// ListAll returns every registered lot for discovery.
	ListAll(ctx context.Context) ([]*LotView, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*LotView, error)
}

type LotReadStore interface {
	FindAll(ctx context.Context) ([]*LotView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*LotView, error)
}

type lotQueriesImpl struct {
	store LotReadStore
}

func NewLotQueries(store LotReadStore) LotQueries {
	return &lotQueriesImpl{store: store}
}

func (q *lotQueriesImpl) ListAll(ctx context.Context) ([]*LotView, error) {
	return q.store.FindAll(ctx)
}

func (q *lotQueriesImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*LotView, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}
