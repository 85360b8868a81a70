package api

import (
	"net/http"

	resdto "cafe-fausse/internal/handler/dto/response"
	"cafe-fausse/internal/handler/httperr"
	"cafe-fausse/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	overviewQueries queries.OverviewQueries
}

func NewAdminHandler(overviewQueries queries.OverviewQueries) *AdminHandler {
	return &AdminHandler{
		overviewQueries: overviewQueries,
	}
}

// @Summary Admin overview
// @Description All reservations and newsletter subscribers
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} resdto.OverviewResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/overview [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	view, err := h.overviewQueries.GetOverview(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error.")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverviewView(view))
}
