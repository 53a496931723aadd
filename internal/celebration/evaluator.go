// Package celebration decides whether a domain event deserves a celebration
// and of what category. It never picks visuals; the presentation layer maps
// the returned kind to a theme on its own.
package celebration

import (
	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

// Event is a completed domain occurrence the evaluator may react to.
// RecordID identifies the underlying row (session, task) so the same record
// cannot fire twice; AlreadyShown carries its celebration_shown flag.
type Event struct {
	Type         string
	Value        float64
	RecordID     int64
	AlreadyShown bool
}

type Kind string

const (
	KindCustom          Kind = "custom"
	KindStreakMilestone Kind = "streak_milestone"
	KindDailyGoal       Kind = "daily_goal"
	KindTargetMet       Kind = "target_met"
)

// Decision is the evaluator's output. When Fire is true the caller must
// mark the underlying record shown before surfacing the celebration.
type Decision struct {
	Fire      bool  `json:"fire"`
	Kind      Kind  `json:"kind,omitempty"`
	TriggerID int64 `json:"trigger_id,omitempty"`
}

// Evaluate checks user-configured triggers first, in order, then falls back
// to the default milestones. A record that has already celebrated never
// fires again regardless of which rule would match.
func Evaluate(event Event, triggers []models.CelebrationTrigger, params analytics.Params) Decision {
	if event.AlreadyShown {
		return Decision{}
	}

	for _, t := range triggers {
		if !t.IsActive || t.TriggerType != event.Type {
			continue
		}
		if event.Value >= t.TriggerValue {
			return Decision{Fire: true, Kind: KindCustom, TriggerID: t.ID}
		}
	}

	switch event.Type {
	case models.TriggerStreakReached:
		for _, m := range params.StreakMilestones {
			if int(event.Value) == m {
				return Decision{Fire: true, Kind: KindStreakMilestone}
			}
		}
	case models.TriggerQuestionsSolved:
		if int(event.Value) >= params.DailyQuestionGoal {
			return Decision{Fire: true, Kind: KindDailyGoal}
		}
	case models.TriggerTargetMet:
		if event.Value >= 100 {
			return Decision{Fire: true, Kind: KindTargetMet}
		}
	}

	return Decision{}
}
