package services

import (
	"testing"
	"time"

	"prohub/internal/db"
	"prohub/internal/models"
	"prohub/internal/testutils"
	"prohub/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dbTransaction(fn func(tx *gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// seedTypeCache plants a catalog entry in the LRU so tests control the
// issued point value without a catalog query.
func seedTypeCache(wtype *models.WarningType) {
	utils.GetCache().Set(warningTypeCacheKey(wtype.ID), wtype, warningTypeCacheTTL)
}

func TestIssueWarningAppliesFirstSanction(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	seedTypeCache(&models.WarningType{ID: 42, Name: "spam", Points: 5})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(9, "active"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points\), 0\) FROM "warnings" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "warnings" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "sanction_events" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "sanction_events" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "sanction_events" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Two best-effort inbox writes: warning issued, sanction applied.
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "notifications" (.+) RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()
	}

	warning, event, err := IssueWarning(9, 2, 42, "unsolicited advertising", "first offense")
	require.NoError(t, err)
	assert.Equal(t, 5, warning.Points)
	require.NotNil(t, event)
	assert.Equal(t, models.TierSuspend1d, event.Tier)
	require.NotNil(t, event.LiftAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), *event.LiftAt, time.Minute)

	WaitForNotifications()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueWarningInsideTierStaysQuiet(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	seedTypeCache(&models.WarningType{ID: 43, Name: "offtopic", Points: 1})

	// Already at 5 points: 5 -> 6 stays inside the 1-day tier, so no
	// sanction statements at all.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(9, "suspended"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points\), 0\) FROM "warnings" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO "warnings" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	warning, event, err := IssueWarning(9, 2, 43, "wrong section", "")
	require.NoError(t, err)
	assert.Equal(t, 1, warning.Points)
	assert.Nil(t, event)

	WaitForNotifications()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueWarningSwallowsRedundantSanction(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	seedTypeCache(&models.WarningType{ID: 44, Name: "spam", Points: 5})

	lift := time.Now().AddDate(0, 0, 30)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(9, "suspended"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points\), 0\) FROM "warnings" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "warnings" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	// A concurrent crossing already parked the user at a higher tier.
	mock.ExpectQuery(`SELECT (.+) FROM "sanction_events" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tier", "lift_at", "created_at"}).
			AddRow(5, 9, string(models.TierSuspend30d), lift, time.Now()))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	warning, event, err := IssueWarning(9, 2, 44, "spam again", "")
	require.NoError(t, err) // the warning itself still succeeds
	assert.Equal(t, 5, warning.Points)
	assert.Nil(t, event)

	WaitForNotifications()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueWarningUnknownType(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "warning_types" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := IssueWarning(9, 2, 999, "whatever", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySanctionSupersedesPriorTier(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	prior := now.AddDate(0, 0, 1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "sanction_events" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tier", "lift_at", "created_at"}).
			AddRow(5, 9, string(models.TierSuspend1d), prior, now.Add(-time.Hour)))
	mock.ExpectExec(`UPDATE "sanction_events" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "sanction_events" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var event *models.SanctionEvent
	err := dbTransaction(func(tx *gorm.DB) error {
		var err error
		event, err = applySanction(tx, 9, models.TierSuspend7d, 2, now)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, models.TierSuspend7d, event.Tier)
	require.NotNil(t, event.LiftAt)
	assert.WithinDuration(t, now.AddDate(0, 0, 7), *event.LiftAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySanctionPermanentBanHasNoLift(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "sanction_events" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "sanction_events" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "sanction_events" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var event *models.SanctionEvent
	err := dbTransaction(func(tx *gorm.DB) error {
		var err error
		event, err = applySanction(tx, 9, models.TierPermanentBan, 2, time.Now())
		return err
	})
	require.NoError(t, err)
	assert.Nil(t, event.LiftAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
