package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailySales returns per-day sales for the last N days (?days=30)
func (h *ReportHandler) DailySales(c *gin.Context) {
	days := 30
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = parsed
	}

	results, err := h.reportService.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved", results)
}

// Summary returns aggregated sales between ?from= and ?to= (YYYY-MM-DD)
func (h *ReportHandler) Summary(c *gin.Context) {
	var from, to time.Time

	if f := c.Query("from"); f != "" {
		t, err := time.Parse("2006-01-02", f)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	summary, err := h.reportService.GetSalesSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved", summary)
}
