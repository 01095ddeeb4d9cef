package services

import (
	"errors"
	"fmt"
	"time"

	"prohub/internal/db"
	"prohub/internal/models"

	"gorm.io/gorm"
)

// tierRule binds a cumulative point floor to the sanction it triggers.
// SuspendDays == 0 means a permanent ban.
type tierRule struct {
	Floor       int
	Tier        models.SanctionTier
	SuspendDays int
}

// sanctionLadder is ordered by strictly increasing floor and severity.
var sanctionLadder = []tierRule{
	{Floor: 5, Tier: models.TierSuspend1d, SuspendDays: 1},
	{Floor: 7, Tier: models.TierSuspend7d, SuspendDays: 7},
	{Floor: 10, Tier: models.TierSuspend30d, SuspendDays: 30},
	{Floor: 15, Tier: models.TierPermanentBan, SuspendDays: 0},
}

// TierFor returns the tier whose floor is the greatest value not
// exceeding points, or TierNone below the lowest floor.
func TierFor(points int) models.SanctionTier {
	tier := models.TierNone
	for _, rule := range sanctionLadder {
		if points >= rule.Floor {
			tier = rule.Tier
		}
	}
	return tier
}

// tierRank orders tiers by severity. TierNone ranks lowest.
func tierRank(tier models.SanctionTier) int {
	for i, rule := range sanctionLadder {
		if rule.Tier == tier {
			return i + 1
		}
	}
	return 0
}

// Evaluate decides whether moving from before to after active points
// crosses into a stricter tier. It fires at most once per crossing:
// additional warnings inside the same tier return false.
func Evaluate(before, after int) (models.SanctionTier, bool) {
	afterTier := TierFor(after)
	if tierRank(afterTier) > tierRank(TierFor(before)) {
		return afterTier, true
	}
	return models.TierNone, false
}

func ruleFor(tier models.SanctionTier) (tierRule, bool) {
	for _, rule := range sanctionLadder {
		if rule.Tier == tier {
			return rule, true
		}
	}
	return tierRule{}, false
}

// applySanction persists a sanction event inside the issuing transaction.
// The caller holds the target's user row lock, which serializes
// concurrent crossings for the same user. If the standing sanction is
// already at or above tier, the insert is skipped with ErrConflict.
func applySanction(tx *gorm.DB, userID uint, tier models.SanctionTier, appliedBy uint, now time.Time) (*models.SanctionEvent, error) {
	rule, ok := ruleFor(tier)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sanction tier %q", ErrValidation, tier)
	}

	var latest models.SanctionEvent
	err := tx.Where("user_id = ? AND superseded_at IS NULL AND lifted_at IS NULL", userID).
		Order("created_at DESC").
		First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && latest.Active(now) && tierRank(latest.Tier) >= tierRank(tier) {
		return nil, fmt.Errorf("%w: sanction for user %d already at tier %s", ErrConflict, userID, latest.Tier)
	}

	// Newest tier wins: retire whatever was standing before.
	if err := tx.Model(&models.SanctionEvent{}).
		Where("user_id = ? AND superseded_at IS NULL AND lifted_at IS NULL", userID).
		Update("superseded_at", now).Error; err != nil {
		return nil, err
	}

	event := models.SanctionEvent{
		UserID:    userID,
		Tier:      tier,
		AppliedBy: appliedBy,
	}
	status := models.StatusBanned
	if rule.SuspendDays > 0 {
		lift := now.AddDate(0, 0, rule.SuspendDays)
		event.LiftAt = &lift
		status = models.StatusSuspended
	}
	if err := tx.Create(&event).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"status":          status,
		"suspended_until": event.LiftAt,
	}).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

// ActiveSanction returns the user's standing sanction, or nil.
func ActiveSanction(userID uint) (*models.SanctionEvent, error) {
	var event models.SanctionEvent
	err := db.DB.Where("user_id = ? AND superseded_at IS NULL AND lifted_at IS NULL", userID).
		Order("created_at DESC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !event.Active(time.Now()) {
		return nil, nil
	}
	return &event, nil
}

// LiftSanction is the explicit moderator lift. It closes the standing
// sanction and reactivates the account.
func LiftSanction(userID, moderatorID uint) error {
	now := time.Now()
	return db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SanctionEvent{}).
			Where("user_id = ? AND superseded_at IS NULL AND lifted_at IS NULL", userID).
			Updates(map[string]interface{}{
				"lifted_at": now,
				"lifted_by": moderatorID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: no active sanction for user %d", ErrNotFound, userID)
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"status":          models.StatusActive,
			"suspended_until": nil,
		}).Error
	})
}

// ReactivateIfLapsed flips a suspended account back to active once its
// term has passed. Called from the login path; the passive counterpart
// of LiftSanction.
func ReactivateIfLapsed(user *models.User, now time.Time) error {
	if !user.SuspensionOver(now) {
		return nil
	}
	err := db.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"status":          models.StatusActive,
		"suspended_until": nil,
	}).Error
	if err != nil {
		return err
	}
	user.Status = models.StatusActive
	user.SuspendedUntil = nil
	return nil
}
