package api

import (
	"errors"
	"net/http"

	reqdto "cafe-fausse/internal/handler/dto/request"
	resdto "cafe-fausse/internal/handler/dto/response"
	"cafe-fausse/internal/handler/httperr"
	"cafe-fausse/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	bookingCommands commands.BookingCommands
}

func NewReservationHandler(bookingCommands commands.BookingCommands) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create reservation
// @Description Book a table for a time slot; assigns a free table at random
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format.",
		})
		return
	}

	view, err := h.bookingCommands.CreateReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name must be at least 2 characters.",
			})
		case errors.Is(err, commands.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address.",
			})
		case errors.Is(err, commands.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guests must be between 1 and 10.",
			})
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation date-time.",
			})
		case errors.Is(err, commands.ErrPastTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation time must be in the future.",
			})
		case errors.Is(err, commands.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A reservation already exists for this email and time slot.",
			})
		case errors.Is(err, commands.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This time slot is fully booked.",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error.")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}
