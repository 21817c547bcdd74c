package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/incial/stockflow/internal/auth"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/service"
)

type EntryHandler struct {
	entries *service.EntryService
	reports *service.ReportService
}

func NewEntryHandler(entries *service.EntryService, reports *service.ReportService) *EntryHandler {
	return &EntryHandler{entries: entries, reports: reports}
}

type submitBatchRequest struct {
	EntryDate string                   `json:"entry_date" binding:"required"`
	Drafts    map[string]service.Draft `json:"drafts" binding:"required"`
}

// Create records one stock entry per complete draft for the refiller's
// outlet. An all-incomplete batch is rejected with 422 and creates nothing.
func (h *EntryHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}

	var req submitBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry_date and drafts are required"})
		return
	}

	created, err := h.entries.SubmitBatch(c.Request.Context(), user, req.EntryDate, req.Drafts)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySubmission) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please enter at least one valid stock entry"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to record entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": len(created), "entries": created})
}

// List returns the enriched history, newest first.
func (h *EntryHandler) List(c *gin.Context) {
	enriched, err := h.reports.EnrichedEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": enriched, "total": len(enriched)})
}
