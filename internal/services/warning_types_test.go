package services

import (
	"testing"

	"prohub/internal/models"
	"prohub/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateWarningTypeDuplicateNameIsConflict(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// The unique index on name rejects the insert; the caller gets a
	// conflict, not an opaque internal error.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "warning_types" (.+) RETURNING "id"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := CreateWarningType(&models.WarningType{Name: "spam", Points: 5})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarningTypeValidation(t *testing.T) {
	assert.ErrorIs(t, CreateWarningType(&models.WarningType{Name: "  ", Points: 5}), ErrValidation)
	assert.ErrorIs(t, CreateWarningType(&models.WarningType{Name: "spam", Points: 0}), ErrValidation)

	negative := -1
	assert.ErrorIs(t, CreateWarningType(&models.WarningType{
		Name: "spam", Points: 5, ExpiresInDays: &negative,
	}), ErrValidation)
}

func TestUpdateWarningTypeRenameCollisionIsConflict(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "warning_types" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "points"}).AddRow(3, "flame", 3))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "warning_types" SET (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err := UpdateWarningType(3, &models.WarningType{Name: "spam", Points: 3})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
