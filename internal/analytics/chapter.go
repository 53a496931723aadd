package analytics

import (
	"math"
	"time"

	"github.com/arnav/studyflow/internal/models"
)

// ChapterState classifies how a chapter is doing.
type ChapterState string

const (
	NotStarted     ChapterState = "not_started"
	NeedsAttention ChapterState = "needs_attention"
	Regular        ChapterState = "regular"
	Strong         ChapterState = "strong"
)

// ChapterStatus classifies a chapter from its aggregate. The rules are
// ordered and the first match wins:
//
//  1. no questions at all          -> NotStarted
//  2. stale (>7 days) or accuracy < 60 -> NeedsAttention
//  3. >50 questions and accuracy > 80  -> Strong
//  4. otherwise                    -> Regular
//
// A chapter with questions but no recorded last-practiced day counts as
// infinitely stale, so rule 2 catches it.
func ChapterStatus(p models.ChapterProgress, asOf time.Time) ChapterState {
	if p.TotalQuestions == 0 {
		return NotStarted
	}
	if DaysSince(p.LastPracticed, asOf) > 7 || p.AvgAccuracy < 60 {
		return NeedsAttention
	}
	if p.TotalQuestions > 50 && p.AvgAccuracy > 80 {
		return Strong
	}
	return Regular
}

// DaysSince returns whole calendar days between the given day string and
// asOf. A nil or unparseable day is treated as infinitely long ago. The
// hour count is rounded, not truncated, so a DST transition inside the span
// cannot shave off a day.
func DaysSince(day *string, asOf time.Time) int {
	if day == nil {
		return math.MaxInt32
	}
	t, err := time.ParseInLocation(DayFormat, *day, asOf.Location())
	if err != nil {
		return math.MaxInt32
	}
	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	return int(math.Round(today.Sub(t).Hours() / 24))
}

// AverageAccuracy is the unweighted mean of the non-nil accuracy values in
// the given sessions, 0 when none carry an accuracy.
func AverageAccuracy(sessions []models.PracticeSession) float64 {
	var sum float64
	var n int
	for _, s := range sessions {
		if s.AccuracyPercentage == nil {
			continue
		}
		sum += *s.AccuracyPercentage
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MasteryLevel summarizes practice depth on a 0-100 scale: accuracy carries
// 60% of the score, volume (capped at 100 questions) the remaining 40%.
func MasteryLevel(totalQuestions int, avgAccuracy float64) int {
	volume := float64(totalQuestions)
	if volume > 100 {
		volume = 100
	}
	level := avgAccuracy*0.6 + volume*0.4
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return int(math.Round(level))
}

// RevisionPriority buckets a chapter for revision planning: 3 when it needs
// attention, 2 for regular, 1 for strong, 0 before any practice.
func RevisionPriority(state ChapterState) int {
	switch state {
	case NeedsAttention:
		return 3
	case Regular:
		return 2
	case Strong:
		return 1
	default:
		return 0
	}
}
