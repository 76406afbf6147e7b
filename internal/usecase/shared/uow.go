package shared

import (
	"context"
	"time"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/earning"
	"parkeaze/internal/domain/lot"
	"parkeaze/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a transaction with retry on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives direct access to command-side reads outside a transaction.
	Reads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Lots() LotRepository
	Bookings() BookingRepository
	Earnings() EarningRepository
	Reads() CommandReads
}

// CommandReads rehydrates aggregates for command validation. Inside a
// transaction the reads share its snapshot; outside they hit the pool.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByPhone(ctx context.Context, phone string) (*user.User, error)
	LotByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	LotByOwner(ctx context.Context, ownerID uuid.UUID) (*lot.Lot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) error
	Update(ctx context.Context, l *lot.Lot) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// FindBy*ForUpdate take a row lock so concurrent redemptions of the
	// same code serialize; the loser then fails the entity's state check.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByEntryCodeForUpdate(ctx context.Context, code booking.Code) (*booking.Booking, error)
	FindByExitCodeForUpdate(ctx context.Context, code booking.Code) (*booking.Booking, error)
	// UpdateEntry and UpdateSettlement are guarded writes: they only apply
	// while the corresponding time is still unset, and report a conflict
	// otherwise. Settlement writes end time, duration, bill and status as
	// one statement.
	UpdateEntry(ctx context.Context, b *booking.Booking) error
	UpdateSettlement(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	// UnredeemedCodeExists reports whether any active booking already
	// holds the code as its entry or exit code.
	UnredeemedCodeExists(ctx context.Context, code booking.Code) (bool, error)
}

// DayAggregate is the raw SQL fold over an owner's completed bookings.
type DayAggregate struct {
	TotalBookings int
	DayEarning    float64
	AppCommission float64
}

type EarningRepository interface {
	// AggregateOwnerDay sums bill totals and platform fees across completed,
	// fully billed bookings created within [from, to].
	AggregateOwnerDay(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (DayAggregate, error)
	Upsert(ctx context.Context, s earning.Summary) error
}
