package services

import (
	"fmt"
	"sync"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/utils"
)

var notifyWG sync.WaitGroup

// NotifyUser writes one inbox message. Failure is wrapped as ErrDelivery
// and must never abort the moderation operation that triggered it; use
// the async variant from those paths.
func NotifyUser(userID uint, actorID *uint, kind models.NotificationType, markdown string) error {
	notification := models.Notification{
		UserID:  userID,
		ActorID: actorID,
		Type:    kind,
		Message: utils.RenderMarkdown(markdown),
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// notifyAsync is the fire-and-forget path used by warning, sanction and
// visibility operations. Delivery failure is logged and dropped; a
// separate retry mechanism can replay from the log.
func notifyAsync(userID uint, actorID *uint, kind models.NotificationType, markdown string) {
	notifyWG.Add(1)
	go func() {
		defer notifyWG.Done()
		if err := NotifyUser(userID, actorID, kind, markdown); err != nil {
			utils.LogErrorWithUser(userID, err, "Notification delivery failed")
		}
	}()
}

// WaitForNotifications blocks until in-flight notification deliveries
// finish. Called on shutdown so pending inbox writes are not dropped.
func WaitForNotifications() {
	notifyWG.Wait()
}

// NotifyWarningIssued informs a user about a new warning on their account.
func NotifyWarningIssued(warning *models.Warning, moderatorID uint) {
	msg := fmt.Sprintf(
		"You have received a **%d point** warning: %s\n\nAccumulated warnings lead to account suspension.",
		warning.Points, warning.Reason,
	)
	notifyAsync(warning.UserID, &moderatorID, models.NotificationWarningIssued, msg)
}

// NotifySanctionApplied informs a user that a sanction took effect.
func NotifySanctionApplied(event *models.SanctionEvent, moderatorID uint) {
	var msg string
	if event.LiftAt == nil {
		msg = "Your account has been **permanently banned** due to accumulated warnings."
	} else {
		msg = fmt.Sprintf(
			"Your account has been **suspended until %s** due to accumulated warnings.",
			event.LiftAt.Format("2006-01-02 15:04 MST"),
		)
	}
	notifyAsync(event.UserID, &moderatorID, models.NotificationSanctionApplied, msg)
}

// NotifyContentHidden informs an author their content was hidden.
func NotifyContentHidden(authorID, moderatorID uint, kind models.ContentKind, reason string) {
	msg := fmt.Sprintf("Your %s has been hidden by a moderator. Reason: %s", kind, reason)
	notifyAsync(authorID, &moderatorID, models.NotificationContentHidden, msg)
}

// NotifyReportUpdate informs a reporter their report was decided.
func NotifyReportUpdate(report *models.ContentReport, adminID uint) {
	var msg string
	switch report.Status {
	case models.ReportResolved:
		msg = fmt.Sprintf("Your report about a %s has been reviewed and action was taken. Thank you.", report.ContentType)
	case models.ReportDismissed:
		msg = fmt.Sprintf("Your report about a %s has been reviewed; no action was warranted.", report.ContentType)
	default:
		return
	}
	notifyAsync(report.ReporterID, &adminID, models.NotificationReportUpdate, msg)
}
