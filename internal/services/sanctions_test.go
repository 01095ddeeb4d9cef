package services

import (
	"testing"

	"prohub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTierForBoundaries(t *testing.T) {
	cases := []struct {
		points int
		tier   models.SanctionTier
	}{
		{0, models.TierNone},
		{4, models.TierNone},
		{5, models.TierSuspend1d},
		{6, models.TierSuspend1d},
		{7, models.TierSuspend7d},
		{9, models.TierSuspend7d},
		{10, models.TierSuspend30d},
		{14, models.TierSuspend30d},
		{15, models.TierPermanentBan},
		{100, models.TierPermanentBan},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, TierFor(tc.points), "points=%d", tc.points)
	}
}

func TestEvaluateFiresOncePerCrossing(t *testing.T) {
	// First crossing into the 1-day tier fires.
	tier, apply := Evaluate(0, 5)
	assert.True(t, apply)
	assert.Equal(t, models.TierSuspend1d, tier)

	// Further warnings inside the same tier stay quiet.
	_, apply = Evaluate(5, 6)
	assert.False(t, apply)
	_, apply = Evaluate(6, 6)
	assert.False(t, apply)

	// Skipping a tier fires the highest one reached.
	tier, apply = Evaluate(5, 10)
	assert.True(t, apply)
	assert.Equal(t, models.TierSuspend30d, tier)

	tier, apply = Evaluate(10, 20)
	assert.True(t, apply)
	assert.Equal(t, models.TierPermanentBan, tier)
}

func TestEvaluateBelowFirstFloor(t *testing.T) {
	_, apply := Evaluate(0, 4)
	assert.False(t, apply)

	tier, apply := Evaluate(4, 5)
	assert.True(t, apply)
	assert.Equal(t, models.TierSuspend1d, tier)
}

func TestEvaluateNeverFiresOnDecrease(t *testing.T) {
	// Points only fall via expiration; re-evaluation after a drop must
	// not produce a new sanction.
	_, apply := Evaluate(10, 3)
	assert.False(t, apply)
	_, apply = Evaluate(15, 14)
	assert.False(t, apply)
}

func TestTierRankOrdering(t *testing.T) {
	assert.Equal(t, 0, tierRank(models.TierNone))
	assert.Less(t, tierRank(models.TierSuspend1d), tierRank(models.TierSuspend7d))
	assert.Less(t, tierRank(models.TierSuspend7d), tierRank(models.TierSuspend30d))
	assert.Less(t, tierRank(models.TierSuspend30d), tierRank(models.TierPermanentBan))
}

func TestRuleForPermanentHasNoDuration(t *testing.T) {
	rule, ok := ruleFor(models.TierPermanentBan)
	assert.True(t, ok)
	assert.Equal(t, 0, rule.SuspendDays)

	rule, ok = ruleFor(models.TierSuspend30d)
	assert.True(t, ok)
	assert.Equal(t, 30, rule.SuspendDays)

	_, ok = ruleFor(models.TierNone)
	assert.False(t, ok)
}
