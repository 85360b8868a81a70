package readstore

import (
	"context"

	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/infra/db"
	"cafe-fausse/internal/usecase/queries"
)

// OverviewReadStore serves the admin report. No locking beyond the
// store's default read consistency; this is a reporting view.
type OverviewReadStore struct {
	db db.DBTX
}

func NewOverviewReadStore(dbtx db.DBTX) *OverviewReadStore {
	return &OverviewReadStore{db: dbtx}
}

func (s *OverviewReadStore) ListReservationsBySlot(ctx context.Context) ([]*queries.ReservationView, error) {
	const query = `
		SELECT id, name, email, phone, guests, time_slot, table_number, newsletter_opt_in, created_at
		FROM reservations
		ORDER BY time_slot ASC, table_number ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		var v queries.ReservationView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Email, &v.Phone, &v.Guests,
			&v.TimeSlot, &v.TableNumber, &v.NewsletterOptIn, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	return result, nil
}

func (s *OverviewReadStore) ListSubscribersByCreatedDesc(ctx context.Context) ([]*queries.SubscriberView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM newsletter_subscribers
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers", err)
	}
	defer rows.Close()

	var result []*queries.SubscriberView
	for rows.Next() {
		var v queries.SubscriberView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscribers", err)
	}

	return result, nil
}
