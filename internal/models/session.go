package models

import "time"

// Subjects tracked by the planner. The set is closed: analytics (readiness
// weights, per-subject breakdowns) key on these names.
const (
	SubjectPhysics     = "Physics"
	SubjectChemistry   = "Chemistry"
	SubjectMathematics = "Mathematics"
)

var Subjects = []string{SubjectPhysics, SubjectChemistry, SubjectMathematics}

func ValidSubject(s string) bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

// Practice sources. "Custom" carries free-form SourceDetails.
const (
	SourceModule = "Module"
	SourcePYQs   = "PYQs"
	SourceCPPs   = "CPPs"
	SourceNCERT  = "NCERT"
	SourceOther  = "Other"
	SourceCustom = "Custom"
)

var Sources = []string{SourceModule, SourcePYQs, SourceCPPs, SourceNCERT, SourceOther, SourceCustom}

func ValidSource(s string) bool {
	for _, v := range Sources {
		if v == s {
			return true
		}
	}
	return false
}

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyMixed  = "Mixed"
)

func ValidDifficulty(s string) bool {
	switch s {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return true
	}
	return false
}

// PracticeSession is one logged block of question practice. Date is the
// calendar day the practice belongs to, as "YYYY-MM-DD"; window membership
// is decided by that string, never by CreatedAt.
type PracticeSession struct {
	ID                 int64     `json:"id"`
	OwnerID            int64     `json:"owner_id"`
	Date               string    `json:"date"`
	Subject            string    `json:"subject"`
	Chapter            string    `json:"chapter"`
	Source             string    `json:"source"`
	SourceDetails      string    `json:"source_details,omitempty"`
	QuestionsTarget    int       `json:"questions_target"`
	QuestionsSolved    int       `json:"questions_solved"`
	TimeSpentMinutes   int       `json:"time_spent_minutes"`
	DifficultyLevel    *string   `json:"difficulty_level,omitempty"`
	AccuracyPercentage *float64  `json:"accuracy_percentage,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CelebrationShown   bool      `json:"celebration_shown"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SessionFilter struct {
	OwnerID  int64
	Subject  string
	Chapter  string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
	OrderDir string
}
