package models

import (
	"time"
)

type NotificationType string

const (
	NotificationWarningIssued   NotificationType = "warning_issued"
	NotificationSanctionApplied NotificationType = "sanction_applied"
	NotificationContentHidden   NotificationType = "content_hidden"
	NotificationReportUpdate    NotificationType = "report_update"
	NotificationSystem          NotificationType = "system"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // Receiver
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ActorID   *uint            `gorm:"index" json:"actor_id"` // Sender, nil for system
	Actor     User             `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"actor"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Message   string           `gorm:"type:text" json:"message"` // rendered HTML body
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
