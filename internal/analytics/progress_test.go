package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

func dailyTarget(subject string, questions, minutes int) models.PracticeTarget {
	return models.PracticeTarget{
		TargetType:        models.TargetDaily,
		Subject:           subject,
		QuestionsTarget:   questions,
		TimeTargetMinutes: minutes,
	}
}

func TestTargetProgress_DailyMatchesEvalDayOnly(t *testing.T) {
	target := dailyTarget(models.SubjectPhysics, 50, 60)
	sessions := []models.PracticeSession{
		session("2024-01-03", models.SubjectPhysics, 25, 30),
		session("2024-01-02", models.SubjectPhysics, 50, 60), // wrong day
		session("2024-01-03", models.SubjectChemistry, 50, 60), // wrong subject
	}

	p := analytics.TargetProgress(target, sessions, "2024-01-03")

	assert.Equal(t, 50.0, p.QuestionsPct)
	assert.Equal(t, 50.0, p.TimePct)
	assert.Equal(t, 50.0, p.Combined())
}

func TestTargetProgress_WeeklyUsesDateRange(t *testing.T) {
	target := models.PracticeTarget{
		TargetType:        models.TargetWeekly,
		Subject:           models.SubjectChemistry,
		QuestionsTarget:   100,
		TimeTargetMinutes: 120,
		StartDate:         "2024-01-01",
		EndDate:           "2024-01-07",
	}
	sessions := []models.PracticeSession{
		session("2024-01-01", models.SubjectChemistry, 40, 50),
		session("2024-01-06", models.SubjectChemistry, 60, 70),
		session("2024-01-08", models.SubjectChemistry, 100, 100), // outside range
	}

	p := analytics.TargetProgress(target, sessions, "2024-01-06")

	assert.Equal(t, 100.0, p.QuestionsPct)
	assert.Equal(t, 100.0, p.TimePct)
}

func TestTargetProgress_ClampsAt100(t *testing.T) {
	target := dailyTarget(models.SubjectPhysics, 10, 10)
	sessions := []models.PracticeSession{session("2024-01-03", models.SubjectPhysics, 50, 60)}

	p := analytics.TargetProgress(target, sessions, "2024-01-03")

	assert.Equal(t, 100.0, p.QuestionsPct)
	assert.Equal(t, 100.0, p.TimePct)
}

func TestTargetProgress_ZeroTargetYieldsZeroNotNaN(t *testing.T) {
	target := dailyTarget(models.SubjectPhysics, 0, 0)
	sessions := []models.PracticeSession{session("2024-01-03", models.SubjectPhysics, 50, 60)}

	p := analytics.TargetProgress(target, sessions, "2024-01-03")

	assert.Zero(t, p.QuestionsPct)
	assert.Zero(t, p.TimePct)
}

func TestTargetProgress_NoSessions(t *testing.T) {
	p := analytics.TargetProgress(dailyTarget(models.SubjectPhysics, 50, 60), nil, "2024-01-03")

	assert.Zero(t, p.Combined())
}
