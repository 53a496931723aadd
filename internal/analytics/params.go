package analytics

// Params carries the product-tunable constants the engine depends on. The
// shapes of the formulas are fixed; the numbers are configuration.
type Params struct {
	StreakLookbackDays   int
	AccountabilityWindow int
	DailyQuestionGoal    int
	MotivationHighPerDay float64
	MotivationMedPerDay  float64
	ReadinessWeights     map[string]float64
	StreakMilestones     []int
}

// DefaultParams mirrors the config defaults so pure callers (and tests)
// do not need a Config.
func DefaultParams() Params {
	return Params{
		StreakLookbackDays:   30,
		AccountabilityWindow: 7,
		DailyQuestionGoal:    50,
		MotivationHighPerDay: 50,
		MotivationMedPerDay:  25,
		ReadinessWeights:     map[string]float64{"Physics": 0.35, "Chemistry": 0.3, "Mathematics": 0.35},
		StreakMilestones:     []int{3, 7, 14, 21},
	}
}
