package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a scheduled study item, independent of practice sessions.
// Completion rates over the week feed the readiness score.
type Task struct {
	ID               int64     `json:"id"`
	OwnerID          int64     `json:"owner_id"`
	Title            string    `json:"title"`
	Subject          string    `json:"subject"`
	Chapter          string    `json:"chapter"`
	ScheduledDate    string    `json:"scheduled_date"`
	Completed        bool      `json:"completed"`
	Priority         string    `json:"priority"`
	DurationMinutes  int       `json:"duration_minutes"`
	CelebrationShown bool      `json:"celebration_shown"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TaskFilter struct {
	OwnerID   int64
	Subject   string
	DateFrom  string
	DateTo    string
	Completed *bool
	Limit     int
	Offset    int
}
