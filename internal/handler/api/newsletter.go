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

type NewsletterHandler struct {
	newsletterCommands commands.NewsletterCommands
}

func NewNewsletterHandler(newsletterCommands commands.NewsletterCommands) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterCommands: newsletterCommands,
	}
}

// @Summary Newsletter signup
// @Description Subscribe an email to the newsletter; idempotent
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Signup request"
// @Success 200 {object} resdto.SubscribeResponse
// @Success 201 {object} resdto.SubscribeResponse
// @Failure 400 {object} map[string]string
// @Router /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format.",
		})
		return
	}

	result, err := h.newsletterCommands.Subscribe(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address.",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error.")
		return
	}

	status := http.StatusCreated
	if result.AlreadySubscribed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.NewSubscribeResponse(result.AlreadySubscribed))
}
