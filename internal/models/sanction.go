package models

import (
	"time"
)

// SanctionTier names the action derived from accumulated warning points.
type SanctionTier string

const (
	TierNone         SanctionTier = "none"
	TierSuspend1d    SanctionTier = "suspend_1_day"
	TierSuspend7d    SanctionTier = "suspend_7_days"
	TierSuspend30d   SanctionTier = "suspend_30_days"
	TierPermanentBan SanctionTier = "permanent_ban"
)

// SanctionEvent records one applied sanction. A new threshold crossing
// supersedes the previous event; at most one event per user is active
// (not superseded, not lifted).
type SanctionEvent struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;index" json:"user_id"`
	User         User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Tier         SanctionTier `gorm:"size:30;not null" json:"tier"`
	AppliedBy    uint         `gorm:"not null" json:"applied_by"` // moderator whose warning crossed the threshold
	LiftAt       *time.Time   `json:"lift_at"`                    // nil = permanent
	SupersededAt *time.Time   `gorm:"index" json:"superseded_at"`
	LiftedAt     *time.Time   `json:"lifted_at"` // explicit moderator lift
	LiftedBy     *uint        `json:"lifted_by"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Active reports whether the event is still the standing sanction at now.
func (e *SanctionEvent) Active(now time.Time) bool {
	if e.SupersededAt != nil || e.LiftedAt != nil {
		return false
	}
	return e.LiftAt == nil || e.LiftAt.After(now)
}
