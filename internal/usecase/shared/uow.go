package shared

import (
	"context"
	"time"

	"cafe-fausse/internal/domain/booking"
	"cafe-fausse/internal/domain/newsletter"
	"cafe-fausse/internal/usecase/queries"
)

// UnitOfWork scopes repository calls to one atomic transaction. The
// reservation insert and its conditional subscriber insert must commit
// or roll back together.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Subscribers() SubscriberRepository
}

type ReservationRepository interface {
	// Create persists the reservation and returns its created_at. A
	// collision on (time_slot, table_number) surfaces as KindConflict,
	// on (email, time_slot) as KindDuplicateKey.
	Create(ctx context.Context, r *booking.Reservation) (time.Time, error)
	ExistsByEmailAndSlot(ctx context.Context, email string, slot time.Time) (bool, error)
	// OccupiedTables returns the table numbers already reserved at slot.
	OccupiedTables(ctx context.Context, slot time.Time) ([]int, error)
}

type SubscriberRepository interface {
	// FindByEmail returns KindNotFound when no subscriber exists.
	FindByEmail(ctx context.Context, email string) (*queries.SubscriberView, error)
	// Create returns KindDuplicateKey when the email is already subscribed.
	Create(ctx context.Context, s *newsletter.Subscriber) (time.Time, error)
	// CreateIfAbsent inserts unless the email already exists; reports
	// whether a row was written. Never fails on duplicates.
	CreateIfAbsent(ctx context.Context, s *newsletter.Subscriber) (bool, error)
}
