package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cafe-fausse/internal/domain/booking"
	"cafe-fausse/internal/domain/newsletter"
	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/pkg/clock"
	"cafe-fausse/internal/pkg/config"
	"cafe-fausse/internal/pkg/errs"
	"cafe-fausse/internal/usecase/queries"
	"cafe-fausse/internal/usecase/shared"
)

var (
	ErrInvalidName             = errs.New("invalid name")
	ErrInvalidEmail            = errs.New("invalid email")
	ErrInvalidGuestCount       = errs.New("invalid guest count")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrPastTimeSlot            = errs.New("time slot is in the past")
	ErrDuplicateBooking        = errs.New("duplicate booking")
	ErrSlotFull                = errs.New("time slot fully booked")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationParams struct {
	Name            string
	Email           string
	Phone           *string
	Guests          *int
	TimeSlot        string
	NewsletterOptIn bool
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	rng       booking.Randomizer
	maxTables int
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	rng booking.Randomizer,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		clock:     clock,
		rng:       rng,
		maxTables: cfg.MaxTables,
	}
}

type validatedReservation struct {
	name   booking.GuestName
	email  booking.Email
	phone  booking.Phone
	guests booking.GuestCount
	slot   booking.TimeSlot
}

func (b *bookingCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
) (*queries.ReservationView, error) {
	v, err := b.validate(params)
	if err != nil {
		return nil, err
	}

	// Check-then-act on the table pool: the store's unique constraint on
	// (time_slot, table_number) is the serialization point. A conflict
	// means another request won that table, so re-read occupancy and try
	// again. Each lost race implies one more occupied table, so the
	// attempt bound is only exhausted once the slot has truly filled.
	maxAttempts := b.maxTables + 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		view, err := b.tryReserve(ctx, v, params.NewsletterOptIn)
		if err == nil {
			return view, nil
		}

		if infra.IsKind(err, infra.KindConflict) {
			continue
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateBooking
		}
		if isRejection(err) {
			return nil, err
		}

		slog.Error("reservation persistence failed",
			"slot", v.slot.String(),
			"email", v.email.Redacted(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil, ErrSlotFull
}

func (b *bookingCommandsImpl) validate(params CreateReservationParams) (validatedReservation, error) {
	var v validatedReservation
	var err error

	if v.name, err = booking.NewGuestName(params.Name); err != nil {
		return v, errs.Mark(err, ErrInvalidName)
	}
	if v.email, err = booking.NewEmail(params.Email); err != nil {
		return v, errs.Mark(err, ErrInvalidEmail)
	}
	if v.guests, err = booking.NewGuestCount(params.Guests); err != nil {
		return v, errs.Mark(err, ErrInvalidGuestCount)
	}
	if v.slot, err = booking.ParseTimeSlot(params.TimeSlot); err != nil {
		return v, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if err = v.slot.ValidateFutureAt(b.clock.Now()); err != nil {
		return v, errs.Mark(err, ErrPastTimeSlot)
	}
	v.phone = booking.NewPhone(params.Phone)

	return v, nil
}

// tryReserve runs one validate-assign-persist attempt in a single
// transaction: both inserts commit together or not at all.
func (b *bookingCommandsImpl) tryReserve(
	ctx context.Context,
	v validatedReservation,
	newsletterOptIn bool,
) (*queries.ReservationView, error) {
	var view *queries.ReservationView

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reservations().ExistsByEmailAndSlot(ctx, v.email.Value(), v.slot.Time())
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBooking
		}

		occupied, err := tx.Reservations().OccupiedTables(ctx, v.slot.Time())
		if err != nil {
			return err
		}

		table, ok := booking.PickTable(occupied, b.maxTables, b.rng)
		if !ok {
			return ErrSlotFull
		}

		entity, err := booking.NewReservation(v.name, v.email, v.phone, v.guests, v.slot, table, b.maxTables, newsletterOptIn)
		if err != nil {
			return err
		}

		createdAt, err := tx.Reservations().Create(ctx, entity)
		if err != nil {
			return err
		}

		if newsletterOptIn {
			subEmail, err := newsletter.NewEmail(v.email.Value())
			if err != nil {
				return err
			}
			name := v.name.Value()
			if _, err := tx.Subscribers().CreateIfAbsent(ctx, newsletter.NewSubscriber(&name, subEmail)); err != nil {
				return err
			}
		}

		view = reservationViewFromEntity(entity, createdAt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// isRejection reports whether err is an expected business outcome
// rather than an infrastructure failure.
func isRejection(err error) bool {
	for _, rejection := range []error{ErrDuplicateBooking, ErrSlotFull} {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}

func reservationViewFromEntity(r *booking.Reservation, createdAt time.Time) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              r.ID(),
		Name:            r.Name().Value(),
		Email:           r.Email().Value(),
		Phone:           r.Phone().Value(),
		Guests:          r.Guests().Value(),
		TimeSlot:        r.TimeSlot().Time(),
		TableNumber:     r.TableNumber(),
		NewsletterOptIn: r.NewsletterOptIn(),
		CreatedAt:       createdAt,
	}
}
