package models

import (
	"time"
)

type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `gorm:"not null" json:"url"`
	Description string    `gorm:"size:500" json:"description"`
	Hidden      bool      `gorm:"default:false;index" json:"hidden"`
	CreatedAt   time.Time `json:"created_at"`
}
