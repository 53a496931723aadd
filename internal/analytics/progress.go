package analytics

import (
	"math"

	"github.com/arnav/studyflow/internal/models"
)

// Progress is how far along a target is on both of its dimensions,
// each clamped to [0,100].
type Progress struct {
	QuestionsPct float64 `json:"questions_pct"`
	TimePct      float64 `json:"time_pct"`
}

// Combined averages the two dimensions; 100 means the target is met.
func (p Progress) Combined() float64 {
	return (p.QuestionsPct + p.TimePct) / 2
}

// TargetProgress sums the sessions that count toward the target and turns
// the sums into clamped percentages. For Daily targets only sessions dated
// exactly evalDay count; for Weekly/Monthly any session inside
// [StartDate, EndDate] counts. Sessions for other subjects never count.
// Non-positive target values yield 0 rather than dividing by zero; target
// validation rejects those at creation, so this is backstop policy.
func TargetProgress(target models.PracticeTarget, sessions []models.PracticeSession, evalDay string) Progress {
	var questions, minutes int
	for _, s := range sessions {
		if s.Subject != target.Subject {
			continue
		}
		switch target.TargetType {
		case models.TargetDaily:
			if s.Date != evalDay {
				continue
			}
		default:
			if s.Date < target.StartDate || s.Date > target.EndDate {
				continue
			}
		}
		questions += s.QuestionsSolved
		minutes += s.TimeSpentMinutes
	}

	return Progress{
		QuestionsPct: clampedPct(questions, target.QuestionsTarget),
		TimePct:      clampedPct(minutes, target.TimeTargetMinutes),
	}
}

func clampedPct(completed, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, float64(completed)/float64(target)*100)
}
