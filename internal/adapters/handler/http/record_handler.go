package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/letstracker/journal-engine/internal/core/domain"
	"github.com/letstracker/journal-engine/internal/core/services"
)

const dateLayout = "2006-01-02"

type RecordHandler struct {
	svc *services.RecordService
}

func NewRecordHandler(svc *services.RecordService) *RecordHandler {
	return &RecordHandler{
		svc: svc,
	}
}

type upsertRecordRequest struct {
	Date        string          `json:"date" binding:"required"`
	Completions map[string]bool `json:"completions"`
	Note        string          `json:"note"`
}

func (h *RecordHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/records")
	{
		records.PUT("", h.Upsert)
		records.GET("", h.List)
		records.GET("/:date", h.GetByDate)
		records.DELETE("/:date", h.Delete)
	}
}

// Upsert saves the caller's journal for one date, overwriting any entry
// already stored for that day.
func (h *RecordHandler) Upsert(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	var req upsertRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	input := services.UpsertRecordInput{
		UserName:    userName,
		Date:        date,
		Completions: req.Completions,
		Note:        req.Note,
	}

	record, err := h.svc.Upsert(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) List(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	list, err := h.svc.List(c.Request.Context(), userName, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *RecordHandler) GetByDate(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	record, err := h.svc.GetByDate(c.Request.Context(), userName, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) Delete(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userName, date); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date cannot be after end date"})

	case errors.Is(err, domain.ErrUnknownHabit),
		errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrNoteTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
