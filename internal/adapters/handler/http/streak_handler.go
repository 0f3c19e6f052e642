package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letstracker/journal-engine/internal/core/services"
)

type StreakHandler struct {
	svc *services.StreakService
}

func NewStreakHandler(svc *services.StreakService) *StreakHandler {
	return &StreakHandler{svc: svc}
}

func (h *StreakHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/streaks", h.Current)
}

func (h *StreakHandler) Current(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	today, ok := referenceDate(c)
	if !ok {
		return
	}

	streaks, err := h.svc.Current(c.Request.Context(), userName, today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streaks": streaks})
}
