package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letstracker/journal-engine/internal/core/services"
)

type LeaderboardHandler struct {
	svc *services.LeaderboardService
}

func NewLeaderboardHandler(svc *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

func (h *LeaderboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	lb := r.Group("/leaderboard")
	{
		lb.GET("/week", h.Week)
		lb.GET("/month", h.Month)
	}
}

func (h *LeaderboardHandler) Week(c *gin.Context) {
	today, ok := referenceDate(c)
	if !ok {
		return
	}

	entries, err := h.svc.Week(c.Request.Context(), today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *LeaderboardHandler) Month(c *gin.Context) {
	today, ok := referenceDate(c)
	if !ok {
		return
	}

	entries, err := h.svc.Month(c.Request.Context(), today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
