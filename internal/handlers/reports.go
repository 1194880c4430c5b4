package handlers

import (
	"net/http"

	"civicboard/internal/forum"
	"civicboard/internal/models"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles moderation report requests
type ReportHandler struct {
	engine *forum.Engine
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(engine *forum.Engine) *ReportHandler {
	return &ReportHandler{engine: engine}
}

// CreateReport files a report against a topic or reply
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.engine.FileReport(identity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetReports returns the report backlog (moderators only)
func (h *ReportHandler) GetReports(c *gin.Context) {
	reports, err := h.engine.ListReports(identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// UpdateReportStatus transitions a report's triage state (moderators only)
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.engine.UpdateReportStatus(identity(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
