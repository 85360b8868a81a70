//go:build unit || e2e

package builder

import (
	"cafe-fausse/internal/usecase/commands"
)

// ReservationBuilder assembles CreateReservation inputs with sensible
// defaults so tests only state what they care about.
type ReservationBuilder struct {
	name            string
	email           string
	phone           *string
	guests          *int
	timeSlot        string
	newsletterOptIn bool
}

func NewReservationBuilder() *ReservationBuilder {
	guests := 4
	return &ReservationBuilder{
		name:     "Ana Gomez",
		email:    "ana@example.com",
		guests:   &guests,
		timeSlot: "2030-12-24T19:00",
	}
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.name = name
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.email = email
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.phone = &phone
	return b
}

func (b *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	b.guests = &guests
	return b
}

func (b *ReservationBuilder) WithoutGuests() *ReservationBuilder {
	b.guests = nil
	return b
}

func (b *ReservationBuilder) WithTimeSlot(slot string) *ReservationBuilder {
	b.timeSlot = slot
	return b
}

func (b *ReservationBuilder) WithNewsletterOptIn() *ReservationBuilder {
	b.newsletterOptIn = true
	return b
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		Name:            b.name,
		Email:           b.email,
		Phone:           b.phone,
		Guests:          b.guests,
		TimeSlot:        b.timeSlot,
		NewsletterOptIn: b.newsletterOptIn,
	}
}

// BuildRequestBody returns the JSON shape the API accepts.
func (b *ReservationBuilder) BuildRequestBody() map[string]any {
	body := map[string]any{
		"name":              b.name,
		"email":             b.email,
		"time_slot":         b.timeSlot,
		"newsletter_opt_in": b.newsletterOptIn,
	}
	if b.guests != nil {
		body["guests"] = *b.guests
	}
	if b.phone != nil {
		body["phone"] = *b.phone
	}
	return body
}
