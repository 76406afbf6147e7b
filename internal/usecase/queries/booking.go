package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListBySeeker is the seeker's booking history, newest first.
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*BookingListItem, error)
	// ListByLot is the lot's booking history, newest first. History is a
	// derived query, not a maintained list.
	ListByLot(ctx context.Context, lotID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBySeekerID(ctx context.Context, seekerID uuid.UUID) ([]*BookingListItem, error)
	FindByLotID(ctx context.Context, lotID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindBySeekerID(ctx, seekerID)
}

func (q *bookingQueriesImpl) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByLotID(ctx, lotID)
}
