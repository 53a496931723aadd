package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

func TestStreak_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, analytics.Streak(nil, mustDay(t, "2024-01-03"), 30))
}

func TestStreak_TodayMissBreaksStreak(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-01", models.SubjectPhysics, 20, 30),
		session("2024-01-02", models.SubjectPhysics, 25, 30),
		session("2024-01-03", models.SubjectChemistry, 0, 30),
	}

	// Today's session solved nothing, so the streak is broken even though
	// the two prior days qualify.
	assert.Equal(t, 0, analytics.Streak(sessions, mustDay(t, "2024-01-03"), 30))
}

func TestStreak_SameDataEarlierAsOf(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-01", models.SubjectPhysics, 20, 30),
		session("2024-01-02", models.SubjectPhysics, 25, 30),
		session("2024-01-03", models.SubjectChemistry, 0, 30),
	}

	assert.Equal(t, 2, analytics.Streak(sessions, mustDay(t, "2024-01-02"), 30))
}

func TestStreak_ZeroSolvedToday_IgnoresPriorHistory(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-03", models.SubjectPhysics, 0, 30),
		session("2024-01-02", models.SubjectPhysics, 50, 60),
		session("2024-01-01", models.SubjectPhysics, 50, 60),
	}

	assert.Equal(t, 0, analytics.Streak(sessions, mustDay(t, "2024-01-03"), 30))
}

func TestStreak_CappedByLookback(t *testing.T) {
	var sessions []models.PracticeSession
	asOf := mustDay(t, "2024-03-01")
	for i := 0; i < 60; i++ {
		sessions = append(sessions, session(asOf.AddDate(0, 0, -i).Format(analytics.DayFormat), models.SubjectPhysics, 10, 15))
	}

	assert.Equal(t, 5, analytics.Streak(sessions, asOf, 5))
	assert.Equal(t, 30, analytics.Streak(sessions, asOf, 0), "non-positive lookback falls back to 30")
}

func TestStreak_MultipleSessionsPerDayCountOnce(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-03", models.SubjectPhysics, 10, 15),
		session("2024-01-03", models.SubjectChemistry, 10, 15),
		session("2024-01-02", models.SubjectPhysics, 10, 15),
	}

	assert.Equal(t, 2, analytics.Streak(sessions, mustDay(t, "2024-01-03"), 30))
}
