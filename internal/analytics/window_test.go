package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func session(date, subject string, solved, minutes int) models.PracticeSession {
	return models.PracticeSession{
		Date:             date,
		Subject:          subject,
		QuestionsSolved:  solved,
		TimeSpentMinutes: minutes,
	}
}

func TestWindowDays_Today(t *testing.T) {
	asOf := mustDay(t, "2024-01-03")

	days := analytics.WindowDays(analytics.Today, asOf)

	assert.Equal(t, []string{"2024-01-03"}, days)
}

func TestWindowDays_WeekStartsMonday(t *testing.T) {
	// 2024-01-03 is a Wednesday; the week runs Mon 01 .. Sun 07.
	days := analytics.WindowDays(analytics.ThisWeek, mustDay(t, "2024-01-03"))

	require.Len(t, days, 7)
	assert.Equal(t, "2024-01-01", days[0])
	assert.Equal(t, "2024-01-07", days[6])
}

func TestWindowDays_SundayBelongsToPrecedingMonday(t *testing.T) {
	// 2024-01-07 is a Sunday; its week still starts on Monday the 1st.
	days := analytics.WindowDays(analytics.ThisWeek, mustDay(t, "2024-01-07"))

	require.Len(t, days, 7)
	assert.Equal(t, "2024-01-01", days[0])
}

func TestWindowDays_Month(t *testing.T) {
	days := analytics.WindowDays(analytics.ThisMonth, mustDay(t, "2024-02-10"))

	require.Len(t, days, 29, "2024 is a leap year")
	assert.Equal(t, "2024-02-01", days[0])
	assert.Equal(t, "2024-02-29", days[28])
}

func TestWindowTotals_EmptyInputIsAllZero(t *testing.T) {
	asOf := mustDay(t, "2024-01-03")

	for _, w := range []analytics.Window{analytics.Today, analytics.ThisWeek, analytics.ThisMonth} {
		totals := analytics.WindowTotals(nil, w, asOf)
		assert.Equal(t, analytics.Totals{}, totals, "window %s", w)
	}
}

func TestWindowTotals_FiltersByDateString(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-03", models.SubjectPhysics, 30, 60),
		session("2024-01-02", models.SubjectPhysics, 25, 45),
		session("2023-12-31", models.SubjectChemistry, 10, 20),
	}
	asOf := mustDay(t, "2024-01-03")

	today := analytics.WindowTotals(sessions, analytics.Today, asOf)
	assert.Equal(t, analytics.Totals{Questions: 30, TimeMinutes: 60, Sessions: 1}, today)

	week := analytics.WindowTotals(sessions, analytics.ThisWeek, asOf)
	assert.Equal(t, analytics.Totals{Questions: 55, TimeMinutes: 105, Sessions: 2}, week)

	month := analytics.WindowTotals(sessions, analytics.ThisMonth, asOf)
	assert.Equal(t, 55, month.Questions, "December session is outside January")
}

func TestWindowTotals_RoundTripAfterCreate(t *testing.T) {
	// Logging 30 solved today must show up immediately as 30/1.
	s := session("2024-01-03", models.SubjectMathematics, 30, 40)
	s.QuestionsTarget = 30

	totals := analytics.WindowTotals([]models.PracticeSession{s}, analytics.Today, mustDay(t, "2024-01-03"))

	assert.Equal(t, 30, totals.Questions)
	assert.Equal(t, 1, totals.Sessions)
}
