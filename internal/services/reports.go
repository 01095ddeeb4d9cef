package services

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/utils"

	"gorm.io/gorm"
)

// FileReport records a complaint about a content item. The author is
// denormalized at file time so the report survives later content
// deletion. A reporter gets one open report per item.
func FileReport(reporterID uint, kind models.ContentKind, contentID uint, reason models.ReportReason, details string) (*models.ContentReport, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrValidation, kind)
	}
	if !slices.Contains(models.ReportReasons, reason) {
		return nil, fmt.Errorf("%w: unknown report reason %q", ErrValidation, reason)
	}

	authorID, err := ContentAuthor(kind, contentID)
	if err != nil {
		return nil, err
	}

	var existing models.ContentReport
	err = db.DB.Where(
		"reporter_id = ? AND content_type = ? AND content_id = ? AND status IN ?",
		reporterID, kind, contentID,
		[]models.ReportStatus{models.ReportPending, models.ReportReviewed},
	).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: content already reported", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report := models.ContentReport{
		ReporterID:  reporterID,
		ContentType: kind,
		ContentID:   contentID,
		AuthorID:    &authorID,
		Reason:      reason,
		Details:     utils.SanitizeText(details),
		Status:      models.ReportPending,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns reports for the moderation queue, newest first,
// optionally filtered by status.
func ListReports(status models.ReportStatus, limit, offset int) ([]models.ContentReport, error) {
	query := db.DB.Preload("Reporter").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reports []models.ContentReport
	err := query.Limit(limit).Offset(offset).Find(&reports).Error
	return reports, err
}

// GetReport loads one report by id.
func GetReport(id uint) (*models.ContentReport, error) {
	var report models.ContentReport
	if err := db.DB.Preload("Reporter").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: report %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &report, nil
}

// MarkReviewed acknowledges a pending report without deciding it.
// The transition is guarded in the UPDATE itself, so a report another
// moderator already finalized can never slip back.
func MarkReviewed(reportID, adminID uint) (*models.ContentReport, error) {
	result := db.DB.Model(&models.ContentReport{}).
		Where("id = ? AND status = ?", reportID, models.ReportPending).
		Updates(map[string]interface{}{
			"status":   models.ReportReviewed,
			"admin_id": adminID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, transitionFailure(reportID)
	}
	return GetReport(reportID)
}

// Resolve finalizes a report as actioned. Hiding content or warning the
// author are separate, optional calls the handler makes alongside.
func Resolve(reportID, adminID uint, notes string) (*models.ContentReport, error) {
	return closeReport(reportID, adminID, notes, models.ReportResolved)
}

// Dismiss finalizes a report as unwarranted.
func Dismiss(reportID, adminID uint, notes string) (*models.ContentReport, error) {
	return closeReport(reportID, adminID, notes, models.ReportDismissed)
}

func closeReport(reportID, adminID uint, notes string, status models.ReportStatus) (*models.ContentReport, error) {
	now := time.Now()
	result := db.DB.Model(&models.ContentReport{}).
		Where("id = ? AND status IN ?", reportID,
			[]models.ReportStatus{models.ReportPending, models.ReportReviewed}).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_id":    adminID,
			"admin_notes": utils.SanitizeText(notes),
			"resolved_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, transitionFailure(reportID)
	}

	report, err := GetReport(reportID)
	if err != nil {
		return nil, err
	}
	NotifyReportUpdate(report, adminID)
	return report, nil
}

// transitionFailure distinguishes "no such report" from "report already
// in a terminal state" after a guarded UPDATE matched nothing.
func transitionFailure(reportID uint) error {
	var report models.ContentReport
	if err := db.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: report %d", ErrNotFound, reportID)
		}
		return err
	}
	if report.Status.Terminal() {
		return fmt.Errorf("%w: report %d is %s", ErrDowngrade, reportID, report.Status)
	}
	return fmt.Errorf("%w: report %d changed concurrently", ErrConflict, reportID)
}
