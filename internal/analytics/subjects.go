package analytics

import (
	"sort"

	"github.com/arnav/studyflow/internal/models"
)

// SubjectTotals is the per-subject rollup used by focus/breakdown views.
type SubjectTotals struct {
	Name        string `json:"name"`
	Questions   int    `json:"questions"`
	TimeMinutes int    `json:"time_minutes"`
	Sessions    int    `json:"sessions"`
}

// BySubject groups sessions by subject, one entry per subject present in
// the input, in first-appearance order. Callers pick their own sort.
func BySubject(sessions []models.PracticeSession) []SubjectTotals {
	index := map[string]int{}
	var out []SubjectTotals
	for _, s := range sessions {
		i, ok := index[s.Subject]
		if !ok {
			i = len(out)
			index[s.Subject] = i
			out = append(out, SubjectTotals{Name: s.Subject})
		}
		out[i].Questions += s.QuestionsSolved
		out[i].TimeMinutes += s.TimeSpentMinutes
		out[i].Sessions++
	}
	return out
}

// SortByQuestionsDesc orders a breakdown for "focus" displays, busiest
// subject first. Ties keep their existing relative order.
func SortByQuestionsDesc(totals []SubjectTotals) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Questions > totals[j].Questions
	})
}
