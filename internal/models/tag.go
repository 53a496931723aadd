package models

import "time"

const (
	NatureTheory   = "Theory"
	NaturePractice = "Practice"
	NatureRevision = "Revision"
)

func ValidStudyNature(s string) bool {
	switch s {
	case NatureTheory, NaturePractice, NatureRevision:
		return true
	}
	return false
}

// PracticeConfig describes, for a practice-nature tag, which sources are
// allowed and the detail options offered per source (e.g. module names).
type PracticeConfig struct {
	Sources map[string][]string `json:"sources"`
}

// QuickTag is a user-defined taxonomy entry attached to tasks.
// PracticeConfig is non-nil only for tags with StudyNature "Practice".
type QuickTag struct {
	ID             int64           `json:"id"`
	OwnerID        int64           `json:"owner_id"`
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	StudyNature    string          `json:"study_nature"`
	ColorClass     string          `json:"color_class"`
	IsDefault      bool            `json:"is_default"`
	PracticeConfig *PracticeConfig `json:"practice_config,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
