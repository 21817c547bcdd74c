package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/service"
)

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) parseFilter(c *gin.Context) domain.ReportFilter {
	return domain.ReportFilter{
		OutletID: strings.TrimSpace(c.Query("outlet_id")),
		Date:     strings.TrimSpace(c.Query("date")),
	}
}

func (h *ReportHandler) GetPivot(c *gin.Context) {
	filter := h.parseFilter(c)
	report, err := h.service.Pivot(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build pivot report", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	filter := h.parseFilter(c)
	summary, err := h.service.Summary(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch summary", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetTrend(c *gin.Context) {
	filter := h.parseFilter(c)
	points, err := h.service.Trend(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trend", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": points})
}

func (h *ReportHandler) GetProfitByOutlet(c *gin.Context) {
	filter := h.parseFilter(c)
	results, err := h.service.ProfitByOutlet(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch outlet breakdown", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"outlets": results})
}

func (h *ReportHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.service.AvailableDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch available dates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Export is a placeholder. The spreadsheet export was never implemented in
// the product; the endpoint acknowledges the request and does nothing.
func (h *ReportHandler) Export(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"message": "Generating Excel Export..."})
}
