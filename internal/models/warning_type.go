package models

import (
	"time"
)

// WarningType is a catalog entry describing one class of infraction.
// Admin-managed reference data; issued warnings copy Points at issue time,
// so later catalog edits never rewrite history.
type WarningType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Points        int       `gorm:"not null" json:"points"`
	ExpiresInDays *int      `json:"expires_in_days"` // nil = never expires
	Description   string    `gorm:"size:500" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpiryFrom computes the absolute expiry for a warning of this type
// issued at the given time, or nil for a permanent warning.
func (t *WarningType) ExpiryFrom(issuedAt time.Time) *time.Time {
	if t.ExpiresInDays == nil {
		return nil
	}
	expires := issuedAt.AddDate(0, 0, *t.ExpiresInDays)
	return &expires
}
