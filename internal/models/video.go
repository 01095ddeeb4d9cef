package models

import (
	"time"
)

type Video struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `gorm:"not null" json:"url"`
	Hidden    bool      `gorm:"default:false;index" json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}
