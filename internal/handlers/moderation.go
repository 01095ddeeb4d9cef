package handlers

import (
	"net/http"

	"prohub/internal/models"
	"prohub/internal/services"
	"prohub/internal/utils"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct{}

func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{}
}

// ListReports shows the review queue. ?status=pending filters.
func (h *ModerationHandler) ListReports(c *gin.Context) {
	status := models.ReportStatus(c.Query("status"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))
	offset := utils.StringToInt(c.DefaultQuery("offset", "0"))

	reports, err := services.ListReports(status, limit, offset)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// ReviewReport acknowledges a pending report.
func (h *ModerationHandler) ReviewReport(c *gin.Context) {
	moderator := CurrentUser(c)
	reportID := utils.StringToUint(c.Param("id"))

	report, err := services.MarkReviewed(reportID, moderator.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type resolveRequest struct {
	Notes string `json:"notes"`

	// Optional side effects, independent of the transition itself.
	HideContent   bool   `json:"hide_content"`
	WarnAuthor    bool   `json:"warn_author"`
	WarningTypeID uint   `json:"warning_type_id"`
	WarningReason string `json:"warning_reason"`
	WarningNotes  string `json:"warning_notes"`
}

// ResolveReport finalizes a report as actioned, optionally hiding the
// reported content and warning its author in the same request. The
// transition succeeds or fails on its own; side effects report their
// failures separately.
func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	moderator := CurrentUser(c)
	reportID := utils.StringToUint(c.Param("id"))

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	report, err := services.Resolve(reportID, moderator.ID, req.Notes)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	response := gin.H{"report": report}

	if req.HideContent {
		reason := "Report: " + string(report.Reason)
		if err := services.SetHidden(report.ContentType, report.ContentID, true, reason, moderator.ID); err != nil {
			response["hide_error"] = err.Error()
		}
	}

	if req.WarnAuthor {
		if report.AuthorID == nil {
			response["warning_error"] = "content author unknown"
		} else {
			reason := req.WarningReason
			if reason == "" {
				reason = string(report.Reason)
			}
			warning, event, err := services.IssueWarning(*report.AuthorID, moderator.ID, req.WarningTypeID, reason, req.WarningNotes)
			if err != nil {
				response["warning_error"] = err.Error()
			} else {
				response["warning"] = warning
				if event != nil {
					response["sanction"] = event
				}
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

type dismissRequest struct {
	Notes string `json:"notes"`
}

// DismissReport finalizes a report as unwarranted.
func (h *ModerationHandler) DismissReport(c *gin.Context) {
	moderator := CurrentUser(c)
	reportID := utils.StringToUint(c.Param("id"))

	var req dismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	report, err := services.Dismiss(reportID, moderator.ID, req.Notes)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type hideRequest struct {
	Reason string `json:"reason"`
}

// HideContent marks a content item hidden.
func (h *ModerationHandler) HideContent(c *gin.Context) {
	h.setHidden(c, true)
}

// UnhideContent restores a content item's visibility.
func (h *ModerationHandler) UnhideContent(c *gin.Context) {
	h.setHidden(c, false)
}

func (h *ModerationHandler) setHidden(c *gin.Context, hidden bool) {
	moderator := CurrentUser(c)
	kind := models.ContentKind(c.Param("type"))
	contentID := utils.StringToUint(c.Param("id"))

	var req hideRequest
	if err := c.ShouldBindJSON(&req); err != nil && hidden {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := services.SetHidden(kind, contentID, hidden, req.Reason, moderator.ID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "hidden": hidden})
}

// AuditTrail returns the moderation actions logged for one content item.
func (h *ModerationHandler) AuditTrail(c *gin.Context) {
	kind := models.ContentKind(c.Param("type"))
	contentID := utils.StringToUint(c.Param("id"))

	actions, err := services.ListModerationActions(kind, contentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

type issueWarningRequest struct {
	WarningTypeID uint   `json:"warning_type_id" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	Notes         string `json:"notes"`
}

// IssueWarning records an infraction against a user and reports the
// sanction, if the warning crossed a tier threshold.
func (h *ModerationHandler) IssueWarning(c *gin.Context) {
	moderator := CurrentUser(c)
	targetID := utils.StringToUint(c.Param("id"))

	var req issueWarningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	warning, event, err := services.IssueWarning(targetID, moderator.ID, req.WarningTypeID, req.Reason, req.Notes)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	response := gin.H{"warning": warning}
	if event != nil {
		response["sanction"] = event
	}
	c.JSON(http.StatusCreated, response)
}

// ListWarnings shows a user's ledger with active points.
func (h *ModerationHandler) ListWarnings(c *gin.Context) {
	targetID := utils.StringToUint(c.Param("id"))

	warnings, err := services.ListWarnings(targetID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	points, err := services.ActivePoints(targetID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"warnings": warnings, "active_points": points})
}

// LiftSanction is the explicit moderator lift of a standing sanction.
func (h *ModerationHandler) LiftSanction(c *gin.Context) {
	moderator := CurrentUser(c)
	targetID := utils.StringToUint(c.Param("id"))

	if err := services.LiftSanction(targetID, moderator.ID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
