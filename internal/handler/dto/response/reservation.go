package response

import (
	"time"

	"cafe-fausse/internal/usecase/queries"
)

type ReservationCreatedResponse struct {
	Message     string `json:"message"`
	TableNumber int    `json:"table_number"`
	TimeSlot    string `json:"time_slot"`
}

func FromReservationView(view *queries.ReservationView) *ReservationCreatedResponse {
	return &ReservationCreatedResponse{
		Message:     "Reservation created.",
		TableNumber: view.TableNumber,
		TimeSlot:    view.TimeSlot.Format(time.RFC3339),
	}
}
