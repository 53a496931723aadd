package analytics

import (
	"time"

	"github.com/arnav/studyflow/internal/models"
)

// Streak counts consecutive days with at least one session solving a
// question, walking backward from asOf (day 0). A day-0 miss means 0
// immediately: today's absence breaks the streak, it is not skipped.
// The walk stops after maxLookback days; values <= 0 fall back to the
// default lookback of 30.
func Streak(sessions []models.PracticeSession, asOf time.Time, maxLookback int) int {
	if maxLookback <= 0 {
		maxLookback = 30
	}

	active := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		if s.QuestionsSolved > 0 {
			active[s.Date] = true
		}
	}

	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	streak := 0
	for i := 0; i < maxLookback; i++ {
		if !active[day.AddDate(0, 0, -i).Format(DayFormat)] {
			break
		}
		streak++
	}
	return streak
}
