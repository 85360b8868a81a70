package commands

import (
	"context"
	"log/slog"

	"cafe-fausse/internal/domain/newsletter"
	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/pkg/errs"
	"cafe-fausse/internal/usecase/queries"
	"cafe-fausse/internal/usecase/shared"
)

type SubscribeParams struct {
	Name  *string
	Email string
}

type SubscribeResult struct {
	Subscriber        *queries.SubscriberView
	AlreadySubscribed bool
}

type NewsletterCommands interface {
	// Subscribe is idempotent: resubmitting an existing email is a
	// success with AlreadySubscribed set, never an error.
	Subscribe(ctx context.Context, params SubscribeParams) (*SubscribeResult, error)
}

type newsletterCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNewsletterCommands(uow shared.UnitOfWork) NewsletterCommands {
	return &newsletterCommandsImpl{uow: uow}
}

func (n *newsletterCommandsImpl) Subscribe(
	ctx context.Context,
	params SubscribeParams,
) (*SubscribeResult, error) {
	email, err := newsletter.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEmail)
	}

	result, err := n.trySubscribe(ctx, params.Name, email)
	if err != nil {
		// Lost a race against a concurrent signup for the same email.
		// The unique violation aborted that transaction, so read the
		// winner back in a fresh one.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return n.findExisting(ctx, email)
		}
		slog.Error("newsletter signup failed", "error", err.Error())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

func (n *newsletterCommandsImpl) trySubscribe(
	ctx context.Context,
	name *string,
	email newsletter.Email,
) (*SubscribeResult, error) {
	var result SubscribeResult

	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Subscribers().FindByEmail(ctx, email.Value())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if existing != nil {
			result = SubscribeResult{Subscriber: existing, AlreadySubscribed: true}
			return nil
		}

		entity := newsletter.NewSubscriber(name, email)
		createdAt, err := tx.Subscribers().Create(ctx, entity)
		if err != nil {
			return err
		}

		result = SubscribeResult{
			Subscriber: &queries.SubscriberView{
				ID:        entity.ID(),
				Name:      entity.Name(),
				Email:     entity.Email().Value(),
				CreatedAt: createdAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (n *newsletterCommandsImpl) findExisting(ctx context.Context, email newsletter.Email) (*SubscribeResult, error) {
	var result SubscribeResult

	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Subscribers().FindByEmail(ctx, email.Value())
		if err != nil {
			return err
		}
		result = SubscribeResult{Subscriber: existing, AlreadySubscribed: true}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &result, nil
}
