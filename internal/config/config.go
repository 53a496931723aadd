package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	InsightURL         string
	InsightTimeoutSecs int
	InsightWorkerCount int
	InsightQueueSize   int

	// Analytics tunables. These are product parameters, not algorithmic
	// constants, so they are all overridable from the environment.
	StreakLookbackDays      int
	AccountabilityWindow    int
	DailyQuestionGoal       int
	MotivationHighPerDay    float64
	MotivationMedPerDay     float64
	ReadinessWeights        map[string]float64
	DefaultStreakMilestones []int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:studyflow.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		InsightURL:         envOr("INSIGHT_URL", ""),
		InsightTimeoutSecs: envIntOr("INSIGHT_TIMEOUT_SECS", 20),
		InsightWorkerCount: envIntOr("INSIGHT_WORKER_COUNT", 1),
		InsightQueueSize:   envIntOr("INSIGHT_QUEUE_SIZE", 16),

		StreakLookbackDays:      envIntOr("STREAK_LOOKBACK_DAYS", 30),
		AccountabilityWindow:    envIntOr("ACCOUNTABILITY_WINDOW", 7),
		DailyQuestionGoal:       envIntOr("DAILY_QUESTION_GOAL", 50),
		MotivationHighPerDay:    envFloatOr("MOTIVATION_HIGH_PER_DAY", 50),
		MotivationMedPerDay:     envFloatOr("MOTIVATION_MED_PER_DAY", 25),
		ReadinessWeights:        envWeightsOr("READINESS_WEIGHTS", map[string]float64{"Physics": 0.35, "Chemistry": 0.3, "Mathematics": 0.35}),
		DefaultStreakMilestones: envIntsOr("STREAK_MILESTONES", []int{3, 7, 14, 21}),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}

// envWeightsOr parses "Physics=0.35,Chemistry=0.3,Mathematics=0.35".
func envWeightsOr(key string, def map[string]float64) map[string]float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := map[string]float64{}
	for _, pair := range strings.Split(v, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			log.Printf("invalid entry in %s: %q, using defaults", key, pair)
			return def
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			log.Printf("invalid weight in %s: %q, using defaults", key, pair)
			return def
		}
		out[name] = f
	}
	return out
}

// envIntsOr parses "3,7,14,21".
func envIntsOr(key string, def []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Printf("invalid entry in %s: %q, using defaults", key, part)
			return def
		}
		out = append(out, i)
	}
	return out
}
