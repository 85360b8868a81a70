package repository

import (
	"context"
	"errors"
	"time"

	"cafe-fausse/internal/domain/newsletter"
	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/infra/db"
	"cafe-fausse/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type SubscriberRepository struct {
	db db.DBTX
}

func NewSubscriberRepository(dbtx db.DBTX) *SubscriberRepository {
	return &SubscriberRepository{db: dbtx}
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*queries.SubscriberView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM newsletter_subscribers
		WHERE email = $1`

	var view queries.SubscriberView
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Name, &view.Email, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscriber by email", err)
	}

	return &view, nil
}

func (r *SubscriberRepository) Create(ctx context.Context, s *newsletter.Subscriber) (time.Time, error) {
	const query = `
		INSERT INTO newsletter_subscribers (id, name, email)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	var createdAt time.Time
	err := r.db.QueryRow(ctx, query, s.ID(), s.Name(), s.Email().Value()).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return time.Time{}, infra.WrapRepoErr("email already subscribed", err, infra.KindDuplicateKey)
		}
		return time.Time{}, infra.WrapRepoErr("failed to create subscriber", err)
	}

	return createdAt, nil
}

func (r *SubscriberRepository) CreateIfAbsent(ctx context.Context, s *newsletter.Subscriber) (bool, error) {
	const query = `
		INSERT INTO newsletter_subscribers (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, s.ID(), s.Name(), s.Email().Value())
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert subscriber", err)
	}

	return tag.RowsAffected() > 0, nil
}
