package handlers

import (
	"net/http"

	"prohub/internal/models"
	"prohub/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type fileReportRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   uint   `json:"content_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Details     string `json:"details"`
}

// Create files a report against a content item. Any authenticated user.
func (h *ReportHandler) Create(c *gin.Context) {
	var req fileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reporter := CurrentUser(c)
	report, err := services.FileReport(
		reporter.ID,
		models.ContentKind(req.ContentType),
		req.ContentID,
		models.ReportReason(req.Reason),
		req.Details,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}
