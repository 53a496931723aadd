package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 30, cfg.StreakLookbackDays)
	assert.Equal(t, 7, cfg.AccountabilityWindow)
	assert.Equal(t, 50, cfg.DailyQuestionGoal)
	assert.Equal(t, []int{3, 7, 14, 21}, cfg.DefaultStreakMilestones)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("STREAK_LOOKBACK_DAYS", "60")
	t.Setenv("MOTIVATION_HIGH_PER_DAY", "40")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 60, cfg.StreakLookbackDays)
	assert.Equal(t, 40.0, cfg.MotivationHighPerDay)
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("STREAK_LOOKBACK_DAYS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 30, cfg.StreakLookbackDays)
}

func TestReadinessWeightsParsing(t *testing.T) {
	t.Setenv("READINESS_WEIGHTS", "Physics=0.5,Chemistry=0.25,Mathematics=0.25")

	cfg := Load()

	assert.Equal(t, 0.5, cfg.ReadinessWeights["Physics"])
	assert.Equal(t, 0.25, cfg.ReadinessWeights["Chemistry"])
}

func TestMalformedWeightsFallBack(t *testing.T) {
	t.Setenv("READINESS_WEIGHTS", "Physics-oops")

	cfg := Load()

	assert.Equal(t, 0.35, cfg.ReadinessWeights["Physics"])
}
