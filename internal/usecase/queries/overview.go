package queries

import (
	"context"
)

// OverviewReadStore is the read-side port for the admin report.
type OverviewReadStore interface {
	ListReservationsBySlot(ctx context.Context) ([]*ReservationView, error)
	ListSubscribersByCreatedDesc(ctx context.Context) ([]*SubscriberView, error)
}

type OverviewQueries interface {
	// GetOverview returns all reservations ordered by time slot
	// ascending and all subscribers ordered by signup time descending.
	GetOverview(ctx context.Context) (*OverviewView, error)
}

type overviewQueriesImpl struct {
	store OverviewReadStore
}

func NewOverviewQueries(store OverviewReadStore) OverviewQueries {
	return &overviewQueriesImpl{store: store}
}

func (q *overviewQueriesImpl) GetOverview(ctx context.Context) (*OverviewView, error) {
	reservations, err := q.store.ListReservationsBySlot(ctx)
	if err != nil {
		return nil, err
	}

	subscribers, err := q.store.ListSubscribersByCreatedDesc(ctx)
	if err != nil {
		return nil, err
	}

	return &OverviewView{
		Reservations: reservations,
		Subscribers:  subscribers,
	}, nil
}
