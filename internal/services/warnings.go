package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssueWarning appends one infraction to the target's ledger and, in the
// same transaction, recomputes active points and applies a sanction if a
// tier threshold was crossed. The target's user row is locked FOR UPDATE
// for the duration, so concurrent warnings against the same user cannot
// both claim the same crossing; warnings for different users proceed in
// parallel. The returned event is nil when no new sanction fired.
func IssueWarning(targetUserID, moderatorID, warningTypeID uint, reason, notes string) (*models.Warning, *models.SanctionEvent, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	wtype, err := GetWarningType(warningTypeID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	warning := models.Warning{
		UserID:        targetUserID,
		ModeratorID:   moderatorID,
		WarningTypeID: wtype.ID,
		Points:        wtype.Points,
		Reason:        utils.SanitizeText(reason),
		Notes:         utils.SanitizeText(notes),
		ExpiresAt:     wtype.ExpiryFrom(now),
	}

	var event *models.SanctionEvent
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Per-user serialization point: insert, recompute and evaluate
		// all happen under this lock.
		var target models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, targetUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, targetUserID)
			}
			return err
		}

		before, err := activePointsTx(tx, targetUserID, now)
		if err != nil {
			return err
		}

		if err := tx.Create(&warning).Error; err != nil {
			return err
		}

		after := before + warning.Points
		tier, apply := Evaluate(before, after)
		if !apply {
			return nil
		}

		ev, err := applySanction(tx, targetUserID, tier, moderatorID, now)
		if errors.Is(err, ErrConflict) {
			// Retried or concurrent call already applied this crossing.
			// The warning itself still stands.
			utils.LogErrorWithUser(targetUserID, err, "Redundant sanction application suppressed")
			return nil
		}
		if err != nil {
			return err
		}
		event = ev
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	NotifyWarningIssued(&warning, moderatorID)
	if event != nil {
		NotifySanctionApplied(event, moderatorID)
	}
	return &warning, event, nil
}

// ListWarnings returns the user's full ledger, most recent first, with
// the derived IsActive flag filled in.
func ListWarnings(userID uint) ([]models.Warning, error) {
	var warnings []models.Warning
	err := db.DB.Preload("WarningType").Preload("Moderator").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&warnings).Error
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range warnings {
		warnings[i].IsActive = warnings[i].ActiveAt(now)
	}
	return warnings, nil
}

// ActivePoints sums the point values of the user's non-expired warnings.
func ActivePoints(userID uint) (int, error) {
	return activePointsTx(db.DB, userID, time.Now())
}

func activePointsTx(tx *gorm.DB, userID uint, now time.Time) (int, error) {
	var sum int
	err := tx.Model(&models.Warning{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ? AND is_expired = ? AND (expires_at IS NULL OR expires_at > ?)", userID, false, now).
		Scan(&sum).Error
	return sum, err
}

// SumActivePoints is the pure fold over a warning slice, the reference
// semantics ActivePoints computes in SQL.
func SumActivePoints(warnings []models.Warning, now time.Time) int {
	sum := 0
	for i := range warnings {
		if warnings[i].ActiveAt(now) {
			sum += warnings[i].Points
		}
	}
	return sum
}

// SweepExpirations marks every warning whose expiry has passed. The
// update only ever flips is_expired false to true, so repeated or
// concurrent sweeps are safe. Returns the number of rows flipped.
func SweepExpirations(now time.Time) (int64, error) {
	result := db.DB.Model(&models.Warning{}).
		Where("is_expired = ? AND expires_at IS NOT NULL AND expires_at <= ?", false, now).
		Update("is_expired", true)
	return result.RowsAffected, result.Error
}
