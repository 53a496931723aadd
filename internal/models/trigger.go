package models

import "time"

// Celebration trigger types. The value a trigger is compared against depends
// on the type: questions solved for session events, streak length for streak
// events.
const (
	TriggerQuestionsSolved = "questions_solved"
	TriggerStreakReached   = "streak_reached"
	TriggerTargetMet       = "target_met"
	TriggerTaskCompleted   = "task_completed"
)

func ValidTriggerType(s string) bool {
	switch s {
	case TriggerQuestionsSolved, TriggerStreakReached, TriggerTargetMet, TriggerTaskCompleted:
		return true
	}
	return false
}

// CelebrationTrigger is a user-configured rule: fire when an event of
// TriggerType crosses TriggerValue. Inactive triggers are skipped.
type CelebrationTrigger struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	TriggerType  string    `json:"trigger_type"`
	TriggerValue float64   `json:"trigger_value"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
