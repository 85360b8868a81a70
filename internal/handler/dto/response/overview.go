package response

import (
	"time"

	"cafe-fausse/internal/usecase/queries"

	"github.com/google/uuid"
)

// Record shapes mirror the admin dashboard contract; timestamps are
// ISO-8601.
type OverviewResponse struct {
	Reservations []*ReservationRecord `json:"reservations"`
	Subscribers  []*SubscriberRecord  `json:"subscribers"`
}

type ReservationRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Guests      int       `json:"guests"`
	TimeSlot    string    `json:"time_slot"`
	TableNumber int       `json:"table_number"`
	Newsletter  bool      `json:"newsletter"`
}

type SubscriberRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         *string   `json:"name"`
	Email        string    `json:"email"`
	SubscribedAt string    `json:"subscribed_at"`
}

func FromOverviewView(view *queries.OverviewView) *OverviewResponse {
	reservations := make([]*ReservationRecord, len(view.Reservations))
	for i, r := range view.Reservations {
		reservations[i] = &ReservationRecord{
			ID:          r.ID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			Guests:      r.Guests,
			TimeSlot:    r.TimeSlot.Format(time.RFC3339),
			TableNumber: r.TableNumber,
			Newsletter:  r.NewsletterOptIn,
		}
	}

	subscribers := make([]*SubscriberRecord, len(view.Subscribers))
	for i, s := range view.Subscribers {
		subscribers[i] = &SubscriberRecord{
			ID:           s.ID,
			Name:         s.Name,
			Email:        s.Email,
			SubscribedAt: s.CreatedAt.Format(time.RFC3339),
		}
	}

	return &OverviewResponse{
		Reservations: reservations,
		Subscribers:  subscribers,
	}
}
