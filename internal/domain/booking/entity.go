package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTableOutOfRange = errors.New("table number outside the table pool")

type Reservation struct {
	id              uuid.UUID
	name            GuestName
	email           Email
	phone           Phone
	guests          GuestCount
	timeSlot        TimeSlot
	tableNumber     int
	newsletterOptIn bool
	createdAt       time.Time
}

func NewReservation(
	name GuestName,
	email Email,
	phone Phone,
	guests GuestCount,
	slot TimeSlot,
	tableNumber int,
	maxTables int,
	newsletterOptIn bool,
) (*Reservation, error) {
	if tableNumber < 1 || tableNumber > maxTables {
		return nil, ErrTableOutOfRange
	}

	return &Reservation{
		id:              uuid.New(),
		name:            name,
		email:           email,
		phone:           phone,
		guests:          guests,
		timeSlot:        slot,
		tableNumber:     tableNumber,
		newsletterOptIn: newsletterOptIn,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	name GuestName,
	email Email,
	phone Phone,
	guests GuestCount,
	slot TimeSlot,
	tableNumber int,
	newsletterOptIn bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		name:            name,
		email:           email,
		phone:           phone,
		guests:          guests,
		timeSlot:        slot,
		tableNumber:     tableNumber,
		newsletterOptIn: newsletterOptIn,
		createdAt:       createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Name() GuestName       { return r.name }
func (r *Reservation) Email() Email          { return r.email }
func (r *Reservation) Phone() Phone          { return r.phone }
func (r *Reservation) Guests() GuestCount    { return r.guests }
func (r *Reservation) TimeSlot() TimeSlot    { return r.timeSlot }
func (r *Reservation) TableNumber() int      { return r.tableNumber }
func (r *Reservation) NewsletterOptIn() bool { return r.newsletterOptIn }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
