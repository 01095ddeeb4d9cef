package services

import (
	"testing"
	"time"

	"prohub/internal/models"
	"prohub/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSumActivePoints(t *testing.T) {
	now := time.Now()
	warnings := []models.Warning{
		{Points: 5},                                           // never expires
		{Points: 3, ExpiresAt: timePtr(now.Add(time.Hour))},   // still active
		{Points: 2, ExpiresAt: timePtr(now.Add(-time.Hour))},  // past expiry
		{Points: 7, IsExpired: true},                          // swept
		{Points: 1, IsExpired: true, ExpiresAt: timePtr(now.Add(time.Hour))}, // swept wins
	}
	assert.Equal(t, 8, SumActivePoints(warnings, now))
}

func TestSumActivePointsEmpty(t *testing.T) {
	assert.Equal(t, 0, SumActivePoints(nil, time.Now()))
}

func TestSumActivePointsMonotonicUnderAppends(t *testing.T) {
	now := time.Now()
	var warnings []models.Warning
	prev := 0
	for i := 0; i < 10; i++ {
		warnings = append(warnings, models.Warning{Points: i % 3})
		sum := SumActivePoints(warnings, now)
		assert.GreaterOrEqual(t, sum, prev)
		prev = sum
	}
}

func TestIssueWarningRejectsEmptyReason(t *testing.T) {
	_, _, err := IssueWarning(1, 2, 1, "   ", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSweepExpirationsOnlyFlipsForward(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "warnings" SET "is_expired"=(.+) WHERE is_expired = (.+) AND expires_at IS NOT NULL AND expires_at <= (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	count, err := SweepExpirations(now)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepExpirationsIdempotent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Second run over the same window matches nothing.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "warnings" SET "is_expired"=(.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	count, err := SweepExpirations(time.Now())
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
