package services

import (
	"errors"
	"fmt"
	"strings"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/utils"

	"gorm.io/gorm"
)

// contentRow is the slice of a content record the moderation core needs:
// its author and current visibility.
type contentRow struct {
	AuthorID uint
	Hidden   bool
}

// loadContent resolves a content item by kind. The switch is the single
// place that maps the closed kind set to concrete tables; adding a kind
// without extending it is a compile-visible omission in the tests.
func loadContent(tx *gorm.DB, kind models.ContentKind, id uint) (*contentRow, error) {
	var row contentRow
	var err error
	switch kind {
	case models.KindTopic:
		var t models.Topic
		if err = tx.First(&t, id).Error; err == nil {
			row = contentRow{AuthorID: t.UserID, Hidden: t.Hidden}
		}
	case models.KindPost:
		var p models.Post
		if err = tx.First(&p, id).Error; err == nil {
			row = contentRow{AuthorID: p.UserID, Hidden: p.Hidden}
		}
	case models.KindResource:
		var r models.Resource
		if err = tx.First(&r, id).Error; err == nil {
			row = contentRow{AuthorID: r.UserID, Hidden: r.Hidden}
		}
	case models.KindVideo:
		var v models.Video
		if err = tx.First(&v, id).Error; err == nil {
			row = contentRow{AuthorID: v.UserID, Hidden: v.Hidden}
		}
	default:
		return nil, fmt.Errorf("%w: unknown content type %q", ErrValidation, kind)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func contentModel(kind models.ContentKind) interface{} {
	switch kind {
	case models.KindTopic:
		return &models.Topic{}
	case models.KindPost:
		return &models.Post{}
	case models.KindResource:
		return &models.Resource{}
	case models.KindVideo:
		return &models.Video{}
	}
	return nil
}

// ContentAuthor returns the author of a content item, for report
// denormalization.
func ContentAuthor(kind models.ContentKind, id uint) (uint, error) {
	row, err := loadContent(db.DB, kind, id)
	if err != nil {
		return 0, err
	}
	return row.AuthorID, nil
}

// SetHidden toggles a content item's visibility. Idempotent: when the
// stored flag already matches, nothing is written and no audit row is
// added. Every actual transition appends one ModerationAction; hiding
// requires a reason, un-hiding may omit it.
func SetHidden(kind models.ContentKind, contentID uint, hidden bool, reason string, moderatorID uint) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown content type %q", ErrValidation, kind)
	}
	reason = strings.TrimSpace(reason)
	if hidden && reason == "" {
		return fmt.Errorf("%w: hiding content requires a reason", ErrValidation)
	}
	reason = utils.SanitizeText(reason)

	var authorID uint
	var changed bool
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		row, err := loadContent(tx, kind, contentID)
		if err != nil {
			return err
		}
		authorID = row.AuthorID
		if row.Hidden == hidden {
			return nil
		}

		if err := tx.Model(contentModel(kind)).
			Where("id = ?", contentID).
			Update("hidden", hidden).Error; err != nil {
			return err
		}

		action := models.ModerationAction{
			ContentType: kind,
			ContentID:   contentID,
			Hidden:      hidden,
			Reason:      reason,
			ModeratorID: moderatorID,
		}
		if err := tx.Create(&action).Error; err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed && hidden {
		NotifyContentHidden(authorID, moderatorID, kind, reason)
	}
	return nil
}

// ListModerationActions returns the audit trail for one content item,
// oldest first.
func ListModerationActions(kind models.ContentKind, contentID uint) ([]models.ModerationAction, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrValidation, kind)
	}
	var actions []models.ModerationAction
	err := db.DB.Where("content_type = ? AND content_id = ?", kind, contentID).
		Order("created_at ASC").
		Find(&actions).Error
	return actions, err
}
