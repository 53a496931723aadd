// Package tracker owns the derived state on practice targets: streaks,
// best streaks, accountability and motivation. All functions are pure;
// the target service persists what they return.
package tracker

import (
	"math"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

// PeriodKey identifies the accounting period containing day for a target
// type: the day itself for Daily, the week's Monday for Weekly, and
// "YYYY-MM" for Monthly. Keys are comparable and sort chronologically.
func PeriodKey(targetType string, day time.Time) string {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	switch targetType {
	case models.TargetWeekly:
		offset := int(d.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		return d.AddDate(0, 0, -offset).Format(analytics.DayFormat)
	case models.TargetMonthly:
		return d.Format("2006-01")
	default:
		return d.Format(analytics.DayFormat)
	}
}

// periodStart returns the first day of the period n periods before the one
// containing day (n=0 is the current period).
func periodStart(targetType string, day time.Time, n int) time.Time {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	switch targetType {
	case models.TargetWeekly:
		offset := int(d.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		return d.AddDate(0, 0, -offset-7*n)
	case models.TargetMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, -n, 0)
	default:
		return d.AddDate(0, 0, -n)
	}
}

// periodDays enumerates the day strings of the period starting at start.
func periodDays(targetType string, start time.Time) []string {
	switch targetType {
	case models.TargetWeekly:
		days := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, start.AddDate(0, 0, i).Format(analytics.DayFormat))
		}
		return days
	case models.TargetMonthly:
		next := start.AddDate(0, 1, 0)
		var days []string
		for d := start; d.Before(next); d = d.AddDate(0, 0, 1) {
			days = append(days, d.Format(analytics.DayFormat))
		}
		return days
	default:
		return []string{start.Format(analytics.DayFormat)}
	}
}

// PeriodMet reports whether the target's combined progress reached 100% in
// the period starting at start. Combined progress is the average of the
// questions and time percentages, each clamped to 100.
func PeriodMet(target models.PracticeTarget, sessions []models.PracticeSession, start time.Time) bool {
	if target.QuestionsTarget <= 0 || target.TimeTargetMinutes <= 0 {
		return false
	}
	days := map[string]bool{}
	for _, d := range periodDays(target.TargetType, start) {
		days[d] = true
	}

	var questions, minutes int
	for _, s := range sessions {
		if s.Subject != target.Subject || !days[s.Date] {
			continue
		}
		questions += s.QuestionsSolved
		minutes += s.TimeSpentMinutes
	}

	qPct := math.Min(100, float64(questions)/float64(target.QuestionsTarget)*100)
	tPct := math.Min(100, float64(minutes)/float64(target.TimeTargetMinutes)*100)
	return (qPct+tPct)/2 >= 100
}

// Recompute folds the current session set into the target's derived fields.
// Streak rules:
//   - meeting the current period for the first time increments the streak
//   - a missed period between the last met period and now resets it first
//   - BestStreak only ever goes up
func Recompute(target models.PracticeTarget, sessions []models.PracticeSession, asOf time.Time, params analytics.Params) models.PracticeTarget {
	currentKey := PeriodKey(target.TargetType, asOf)
	prevKey := PeriodKey(target.TargetType, periodStart(target.TargetType, asOf, 1))

	if target.LastMetPeriod != currentKey && target.LastMetPeriod != prevKey {
		target.StreakCount = 0
	}

	if PeriodMet(target, sessions, periodStart(target.TargetType, asOf, 0)) && target.LastMetPeriod != currentKey {
		target.StreakCount++
		target.LastMetPeriod = currentKey
	}

	if target.StreakCount > target.BestStreak {
		target.BestStreak = target.StreakCount
	}

	target.AccountabilityScore = AccountabilityScore(target, sessions, asOf, params.AccountabilityWindow)
	target.MotivationLevel = MotivationLevel(target.Subject, sessions, asOf, params)
	return target
}

// AccountabilityScore is round(10 * fraction of the trailing n periods in
// which the target was met). n <= 0 falls back to 7.
func AccountabilityScore(target models.PracticeTarget, sessions []models.PracticeSession, asOf time.Time, n int) int {
	if n <= 0 {
		n = 7
	}
	met := 0
	for i := 0; i < n; i++ {
		if PeriodMet(target, sessions, periodStart(target.TargetType, asOf, i)) {
			met++
		}
	}
	return int(math.Round(10 * float64(met) / float64(n)))
}

// MotivationLevel buckets the trailing 7-day average of questions solved in
// the target's subject against the configured thresholds.
func MotivationLevel(subject string, sessions []models.PracticeSession, asOf time.Time, params analytics.Params) string {
	days := map[string]bool{}
	d := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	for i := 0; i < 7; i++ {
		days[d.AddDate(0, 0, -i).Format(analytics.DayFormat)] = true
	}

	var solved int
	for _, s := range sessions {
		if s.Subject == subject && days[s.Date] {
			solved += s.QuestionsSolved
		}
	}

	avg := float64(solved) / 7
	switch {
	case avg >= params.MotivationHighPerDay:
		return models.MotivationHigh
	case avg >= params.MotivationMedPerDay:
		return models.MotivationMedium
	default:
		return models.MotivationLow
	}
}
