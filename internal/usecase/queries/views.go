package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Guests          int       `json:"guests"`
	TimeSlot        time.Time `json:"time_slot"`
	TableNumber     int       `json:"table_number"`
	NewsletterOptIn bool      `json:"newsletter_opt_in"`
	CreatedAt       time.Time `json:"created_at"`
}

type SubscriberView struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type OverviewView struct {
	Reservations []*ReservationView `json:"reservations"`
	Subscribers  []*SubscriberView  `json:"subscribers"`
}
