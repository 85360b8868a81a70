package repository

import (
	"context"
	"errors"
	"time"

	"cafe-fausse/internal/domain/booking"
	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// Constraint names from migrations/001_initial_schema.sql.
const (
	constraintSlotTable = "reservations_slot_table_key"
	constraintEmailSlot = "reservations_email_slot_key"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) (time.Time, error) {
	const query = `
		INSERT INTO reservations (id, name, email, phone, guests, time_slot, table_number, newsletter_opt_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	var createdAt time.Time
	err := r.db.QueryRow(ctx, query,
		res.ID(),
		res.Name().Value(),
		res.Email().Value(),
		res.Phone().Value(),
		res.Guests().Value(),
		res.TimeSlot().Time(),
		res.TableNumber(),
		res.NewsletterOptIn(),
	).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			switch pgErr.ConstraintName {
			case constraintSlotTable:
				return time.Time{}, infra.WrapRepoErr("table already taken for slot", err, infra.KindConflict)
			case constraintEmailSlot:
				return time.Time{}, infra.WrapRepoErr("reservation already exists for email and slot", err, infra.KindDuplicateKey)
			}
			return time.Time{}, infra.WrapRepoErr("duplicate reservation", err, infra.KindDuplicateKey)
		}
		return time.Time{}, infra.WrapRepoErr("failed to create reservation", err)
	}

	return createdAt, nil
}

func (r *ReservationRepository) ExistsByEmailAndSlot(ctx context.Context, email string, slot time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations WHERE email = $1 AND time_slot = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email, slot).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation existence", err)
	}

	return exists, nil
}

func (r *ReservationRepository) OccupiedTables(ctx context.Context, slot time.Time) ([]int, error) {
	const query = `SELECT table_number FROM reservations WHERE time_slot = $1`

	rows, err := r.db.Query(ctx, query, slot)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied tables", err)
	}
	defer rows.Close()

	var tables []int
	for rows.Next() {
		var table int
		if err := rows.Scan(&table); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied table", err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied tables", err)
	}

	return tables, nil
}
