package models

import "time"

const (
	TargetDaily   = "Daily"
	TargetWeekly  = "Weekly"
	TargetMonthly = "Monthly"
)

func ValidTargetType(s string) bool {
	switch s {
	case TargetDaily, TargetWeekly, TargetMonthly:
		return true
	}
	return false
}

const (
	MotivationHigh   = "high"
	MotivationMedium = "medium"
	MotivationLow    = "low"
)

// PracticeTarget is a per-subject goal. StreakCount, BestStreak,
// AccountabilityScore and MotivationLevel are owned by the tracker and are
// never written directly by the user. LastMetPeriod records the most recent
// period key (see tracker.PeriodKey) in which the target was met, so a
// missed boundary can reset the streak.
type PracticeTarget struct {
	ID                  int64     `json:"id"`
	OwnerID             int64     `json:"owner_id"`
	TargetType          string    `json:"target_type"`
	Subject             string    `json:"subject"`
	QuestionsTarget     int       `json:"questions_target"`
	TimeTargetMinutes   int       `json:"time_target_minutes"`
	StartDate           string    `json:"start_date"`
	EndDate             string    `json:"end_date"`
	StreakCount         int       `json:"streak_count"`
	BestStreak          int       `json:"best_streak"`
	AccountabilityScore int       `json:"accountability_score"`
	MotivationLevel     string    `json:"motivation_level"`
	LastMetPeriod       string    `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
