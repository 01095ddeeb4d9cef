package models

import (
	"time"
)

// Warning is one issued infraction. Rows are append-only: the expiry
// sweep may flip IsExpired, nothing else mutates or deletes them.
type Warning struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;index" json:"user_id"` // sanctioned user
	User          User        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ModeratorID   uint        `gorm:"not null" json:"moderator_id"`
	Moderator     User        `gorm:"foreignKey:ModeratorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"moderator"`
	WarningTypeID uint        `gorm:"not null;index" json:"warning_type_id"`
	WarningType   WarningType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"warning_type"`
	Points        int         `gorm:"not null" json:"points"`            // copied from the catalog at issue time
	Reason        string      `gorm:"size:500;not null" json:"reason"`   // shown to the user
	Notes         string      `gorm:"size:1000" json:"-"`                // moderator-only
	ExpiresAt     *time.Time  `gorm:"index" json:"expires_at"`           // nil = never
	IsExpired     bool        `gorm:"default:false;index" json:"is_expired"`
	CreatedAt     time.Time   `json:"created_at"`

	// Derived, filled on listing.
	IsActive bool `gorm:"-" json:"is_active"`
}

// ActiveAt reports whether the warning still contributes points at now.
func (w *Warning) ActiveAt(now time.Time) bool {
	if w.IsExpired {
		return false
	}
	return w.ExpiresAt == nil || w.ExpiresAt.After(now)
}
