package models

import (
	"time"
)

// ModerationAction is the append-only audit log of content visibility
// changes. One row per actual hidden/visible transition.
type ModerationAction struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ContentType ContentKind `gorm:"size:20;not null;index" json:"content_type"`
	ContentID   uint        `gorm:"not null;index" json:"content_id"`
	Hidden      bool        `gorm:"not null" json:"hidden"` // resulting visibility
	Reason      string      `gorm:"size:500" json:"reason"` // required when hiding
	ModeratorID uint        `gorm:"not null" json:"moderator_id"`
	Moderator   User        `gorm:"foreignKey:ModeratorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"moderator"`
	CreatedAt   time.Time   `json:"created_at"`
}
