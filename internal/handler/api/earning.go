package api

import (
	"errors"
	"net/http"

	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/internal/handler/middleware"
	"parkeaze/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type EarningHandler struct {
	earningCommands commands.EarningCommands
}

func NewEarningHandler(earningCommands commands.EarningCommands) *EarningHandler {
	return &EarningHandler{earningCommands: earningCommands}
}

// @Summary Today's earnings
// @Description Aggregate the owner's completed bookings for today and
// @Description persist the daily summary
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningResponse
// @Failure 403 {object} map[string]string
// @Router /earnings/today [get]
func (h *EarningHandler) Today(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	view, err := h.earningCommands.CollectToday(c.Request.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Owner role required",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningView(view))
}
