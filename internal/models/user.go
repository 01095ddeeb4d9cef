package models

import (
	"time"
)

// Role is the ordered permission level of an account.
type Role string

const (
	RoleMember    Role = "member"
	RoleEditor    Role = "editor"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleMember:    0,
	RoleEditor:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// AtLeast reports whether r grants at least the permissions of other.
// Unknown roles rank below member.
func (r Role) AtLeast(other Role) bool {
	return r.level() >= other.level()
}

func (r Role) level() int {
	if lvl, ok := roleLevels[r]; ok {
		return lvl
	}
	return -1
}

// UserStatus is the account standing. Suspended and banned are written by
// the sanction applicator; login is the enforcement point.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusBanned    UserStatus = "banned"
)

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"` // Hash
	Role           Role       `gorm:"size:20;default:'member';not null" json:"role"`
	Status         UserStatus `gorm:"size:20;default:'active';not null" json:"status"`
	SuspendedUntil *time.Time `json:"suspended_until"` // nil while active or banned
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CanModerate is the capability check used by the moderation surface.
func (u *User) CanModerate() bool {
	return u.Role.AtLeast(RoleModerator)
}

func (u *User) IsAdmin() bool {
	return u.Role.AtLeast(RoleAdmin)
}

// SuspensionOver reports whether a suspended account's term has lapsed.
// Banned accounts carry no SuspendedUntil and never lapse.
func (u *User) SuspensionOver(now time.Time) bool {
	return u.Status == StatusSuspended && u.SuspendedUntil != nil && !u.SuspendedUntil.After(now)
}
