package models

import (
	"time"
)

// ReportStatus is the review state of a content report.
// pending -> reviewed -> resolved|dismissed; pending may also jump
// straight to a terminal state. Terminal states never revert.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// Terminal reports whether no further transition is allowed from s.
func (s ReportStatus) Terminal() bool {
	return s == ReportResolved || s == ReportDismissed
}

// ReportReason is the closed category set offered to reporters.
type ReportReason string

const (
	ReasonSpam      ReportReason = "spam"
	ReasonAbuse     ReportReason = "abuse"
	ReasonIllegal   ReportReason = "illegal"
	ReasonOffTopic  ReportReason = "off_topic"
	ReasonCopyright ReportReason = "copyright"
	ReasonOther     ReportReason = "other"
)

var ReportReasons = []ReportReason{
	ReasonSpam, ReasonAbuse, ReasonIllegal, ReasonOffTopic, ReasonCopyright, ReasonOther,
}

type ContentReport struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	ReporterID  uint         `gorm:"not null;index" json:"reporter_id"`
	Reporter    User         `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reporter"`
	ContentType ContentKind  `gorm:"size:20;not null;index" json:"content_type"`
	ContentID   uint         `gorm:"not null;index" json:"content_id"`
	AuthorID    *uint        `gorm:"index" json:"author_id"` // denormalized at report time
	Reason      ReportReason `gorm:"size:30;not null" json:"reason"`
	Details     string       `gorm:"size:1000" json:"details"`
	Status      ReportStatus `gorm:"size:20;default:'pending';not null;index" json:"status"`
	AdminID     *uint        `json:"admin_id"` // moderator who actioned the report
	AdminNotes  string       `gorm:"size:1000" json:"admin_notes"`
	ResolvedAt  *time.Time   `json:"resolved_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
