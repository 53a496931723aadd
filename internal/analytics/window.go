package analytics

import (
	"time"

	"github.com/arnav/studyflow/internal/models"
)

// DayFormat is the calendar-day layout used everywhere a date crosses a
// boundary: session dates, window membership, period keys.
const DayFormat = "2006-01-02"

type Window int

const (
	Today Window = iota
	ThisWeek
	ThisMonth
)

func (w Window) String() string {
	switch w {
	case Today:
		return "today"
	case ThisWeek:
		return "this_week"
	case ThisMonth:
		return "this_month"
	default:
		return "unknown"
	}
}

// Totals is the rollup for one window.
type Totals struct {
	Questions   int `json:"questions"`
	TimeMinutes int `json:"time_minutes"`
	Sessions    int `json:"sessions"`
}

// WindowDays enumerates the day strings belonging to the window containing
// asOf. Days are local calendar days; weeks start on Monday.
func WindowDays(w Window, asOf time.Time) []string {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	switch w {
	case Today:
		return []string{day.Format(DayFormat)}
	case ThisWeek:
		offset := int(day.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7 // Sunday
		}
		monday := day.AddDate(0, 0, -offset)
		days := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, monday.AddDate(0, 0, i).Format(DayFormat))
		}
		return days
	case ThisMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		next := first.AddDate(0, 1, 0)
		var days []string
		for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
			days = append(days, d.Format(DayFormat))
		}
		return days
	default:
		return nil
	}
}

// WindowTotals sums questions, minutes and session count over the sessions
// whose Date falls inside the window containing asOf. Membership is exact
// string equality against the enumerated day set. Empty input yields zeros.
func WindowTotals(sessions []models.PracticeSession, w Window, asOf time.Time) Totals {
	days := make(map[string]bool, 31)
	for _, d := range WindowDays(w, asOf) {
		days[d] = true
	}

	var t Totals
	for _, s := range sessions {
		if !days[s.Date] {
			continue
		}
		t.Questions += s.QuestionsSolved
		t.TimeMinutes += s.TimeSpentMinutes
		t.Sessions++
	}
	return t
}
