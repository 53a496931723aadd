package analytics

import "math"

// ReadinessScore blends per-subject weekly task-completion rates (0-100)
// into a single exam-readiness number using the configured weights. A
// subject missing from completionRates (no tasks this week) contributes 0,
// it is not excluded. Weights are expected to sum to 1.0.
func ReadinessScore(completionRates map[string]float64, weights map[string]float64) int {
	var score float64
	for subject, weight := range weights {
		score += completionRates[subject] * weight
	}
	return int(math.Round(score))
}

// CompletionRate is the percentage of done out of total, zero-safe.
func CompletionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
