package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/letstracker/journal-engine/internal/core/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/week", h.WeekReport)
		reports.GET("/month", h.MonthReport)
		reports.GET("/range", h.RangeReport)
	}
}

// referenceDate resolves the optional date query parameter, defaulting to the
// current UTC day. Pinning the date keeps report reads reproducible.
func referenceDate(c *gin.Context) (time.Time, bool) {
	v := c.Query("date")
	if v == "" {
		return time.Now().UTC(), true
	}

	parsed, err := time.Parse(dateLayout, v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}

func (h *ReportHandler) WeekReport(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	today, ok := referenceDate(c)
	if !ok {
		return
	}

	report, err := h.svc.WeekReport(c.Request.Context(), userName, today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) MonthReport(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	today, ok := referenceDate(c)
	if !ok {
		return
	}

	report, err := h.svc.MonthReport(c.Request.Context(), userName, today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) RangeReport(c *gin.Context) {
	userName := c.GetHeader("X-User-ID")
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id header"})
		return
	}

	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
		return
	}

	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.svc.RangeReport(c.Request.Context(), userName, start, end)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
