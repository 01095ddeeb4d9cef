package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/utils"

	"gorm.io/gorm"
)

const warningTypeCacheTTL = 10 * time.Minute

func warningTypeCacheKey(id uint) string {
	return fmt.Sprintf("warning_type:%d", id)
}

// GetWarningType resolves a catalog entry, serving repeated lookups from
// the LRU cache. The catalog is tiny and read on every issued warning.
func GetWarningType(id uint) (*models.WarningType, error) {
	cache := utils.GetCache()
	if cached := cache.Get(warningTypeCacheKey(id)); cached != nil {
		if wtype, ok := cached.(*models.WarningType); ok {
			return wtype, nil
		}
	}

	var wtype models.WarningType
	if err := db.DB.First(&wtype, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: warning type %d", ErrNotFound, id)
		}
		return nil, err
	}
	cache.Set(warningTypeCacheKey(id), &wtype, warningTypeCacheTTL)
	return &wtype, nil
}

// ListWarningTypes returns the full catalog ordered by point value.
func ListWarningTypes() ([]models.WarningType, error) {
	var types []models.WarningType
	err := db.DB.Order("points ASC, name ASC").Find(&types).Error
	return types, err
}

func validateWarningType(wtype *models.WarningType) error {
	wtype.Name = strings.TrimSpace(wtype.Name)
	if wtype.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if wtype.Points <= 0 {
		return fmt.Errorf("%w: points must be positive", ErrValidation)
	}
	if wtype.ExpiresInDays != nil && *wtype.ExpiresInDays <= 0 {
		return fmt.Errorf("%w: expiry must be a positive number of days", ErrValidation)
	}
	return nil
}

// CreateWarningType adds a catalog entry. Admin only (enforced upstream).
func CreateWarningType(wtype *models.WarningType) error {
	if err := validateWarningType(wtype); err != nil {
		return err
	}
	if err := db.DB.Create(wtype).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: warning type %q already exists", ErrConflict, wtype.Name)
		}
		return err
	}
	return nil
}

// UpdateWarningType edits a catalog entry and invalidates its cache
// slot. Issued warnings are untouched: they copied their points.
func UpdateWarningType(id uint, updated *models.WarningType) (*models.WarningType, error) {
	if err := validateWarningType(updated); err != nil {
		return nil, err
	}

	var wtype models.WarningType
	if err := db.DB.First(&wtype, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: warning type %d", ErrNotFound, id)
		}
		return nil, err
	}

	wtype.Name = updated.Name
	wtype.Points = updated.Points
	wtype.ExpiresInDays = updated.ExpiresInDays
	wtype.Description = updated.Description
	if err := db.DB.Save(&wtype).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: warning type %q already exists", ErrConflict, wtype.Name)
		}
		return nil, err
	}

	utils.GetCache().Delete(warningTypeCacheKey(id))
	return &wtype, nil
}
