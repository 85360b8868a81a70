package request

import (
	"cafe-fausse/internal/usecase/commands"
)

// Field presence and syntax are validated by the booking command so
// every rejection carries a typed reason; binding only decodes JSON.
type CreateReservationRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Guests          *int    `json:"guests"`
	TimeSlot        string  `json:"time_slot"`
	NewsletterOptIn bool    `json:"newsletter_opt_in"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Guests:          r.Guests,
		TimeSlot:        r.TimeSlot,
		NewsletterOptIn: r.NewsletterOptIn,
	}
}
