package models

// ChapterProgress is a derived aggregate over one chapter's sessions, keyed
// by (owner, subject, chapter). It is upserted by the session service and is
// never created directly by a user.
type ChapterProgress struct {
	ID               int64    `json:"id"`
	OwnerID          int64    `json:"owner_id"`
	Subject          string   `json:"subject"`
	Chapter          string   `json:"chapter"`
	TotalQuestions   int      `json:"total_questions"`
	TotalTimeMinutes int      `json:"total_time_minutes"`
	MasteryLevel     int      `json:"mastery_level"`
	AvgAccuracy      float64  `json:"avg_accuracy"`
	LastPracticed    *string  `json:"last_practiced,omitempty"`
	RevisionPriority int      `json:"revision_priority"`
}
