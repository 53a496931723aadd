package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

func strPtr(s string) *string { return &s }

func TestChapterStatus_DecisionTable(t *testing.T) {
	asOf := mustDay(t, "2024-01-15")

	tests := []struct {
		name     string
		total    int
		accuracy float64
		last     *string
		want     analytics.ChapterState
	}{
		{
			name:  "zero questions is always not started",
			total: 0, accuracy: 95, last: strPtr("2024-01-15"),
			want: analytics.NotStarted,
		},
		{
			name:  "stale chapter needs attention",
			total: 40, accuracy: 75, last: strPtr("2024-01-01"),
			want: analytics.NeedsAttention,
		},
		{
			name:  "low accuracy needs attention",
			total: 40, accuracy: 55, last: strPtr("2024-01-15"),
			want: analytics.NeedsAttention,
		},
		{
			name:  "staleness beats strong numbers",
			total: 60, accuracy: 85, last: strPtr("2024-01-05"), // 10 days ago
			want: analytics.NeedsAttention,
		},
		{
			name:  "high volume and accuracy is strong",
			total: 60, accuracy: 85, last: strPtr("2024-01-14"),
			want: analytics.Strong,
		},
		{
			name:  "middling chapter is regular",
			total: 30, accuracy: 70, last: strPtr("2024-01-14"),
			want: analytics.Regular,
		},
		{
			name:  "never practiced but has questions needs attention",
			total: 10, accuracy: 90, last: nil,
			want: analytics.NeedsAttention,
		},
		{
			name:  "boundary: exactly 7 days is not stale",
			total: 30, accuracy: 70, last: strPtr("2024-01-08"),
			want: analytics.Regular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.ChapterProgress{
				TotalQuestions: tt.total,
				AvgAccuracy:    tt.accuracy,
				LastPracticed:  tt.last,
			}
			assert.Equal(t, tt.want, analytics.ChapterStatus(p, asOf))
		})
	}
}

func TestDaysSince_CountsCalendarDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-09 to 2024-03-16 spans the spring-forward hour, so the span is
	// 167 wall-clock hours but still 7 calendar days.
	asOf := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)
	assert.Equal(t, 7, analytics.DaysSince(strPtr("2024-03-09"), asOf))
}

func TestAverageAccuracy_UnweightedMean(t *testing.T) {
	acc := func(v float64) *float64 { return &v }
	sessions := []models.PracticeSession{
		{QuestionsSolved: 100, AccuracyPercentage: acc(90)},
		{QuestionsSolved: 1, AccuracyPercentage: acc(50)},
		{QuestionsSolved: 10}, // no accuracy recorded, excluded
	}

	// Mean of 90 and 50, not weighted by question counts.
	assert.InDelta(t, 70, analytics.AverageAccuracy(sessions), 0.001)
}

func TestAverageAccuracy_NoValuesIsZero(t *testing.T) {
	sessions := []models.PracticeSession{{QuestionsSolved: 10}}

	assert.Zero(t, analytics.AverageAccuracy(sessions))
}

func TestMasteryLevel_Bounds(t *testing.T) {
	assert.Equal(t, 0, analytics.MasteryLevel(0, 0))
	assert.Equal(t, 100, analytics.MasteryLevel(200, 100))
	assert.Equal(t, 76, analytics.MasteryLevel(100, 60)) // 60*0.6 + 100*0.4
}

func TestRevisionPriority(t *testing.T) {
	assert.Equal(t, 3, analytics.RevisionPriority(analytics.NeedsAttention))
	assert.Equal(t, 2, analytics.RevisionPriority(analytics.Regular))
	assert.Equal(t, 1, analytics.RevisionPriority(analytics.Strong))
	assert.Equal(t, 0, analytics.RevisionPriority(analytics.NotStarted))
}
