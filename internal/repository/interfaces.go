package repository

import (
	"context"

	"github.com/arnav/studyflow/internal/models"
)

// SessionRepository handles practice-session data access. Lookups that miss
// return (nil, nil); callers decide whether that is an error.
type SessionRepository interface {
	Get(ctx context.Context, id int64) (*models.PracticeSession, error)
	List(ctx context.Context, filter models.SessionFilter) ([]models.PracticeSession, error)
	ListForChapter(ctx context.Context, ownerID int64, subject, chapter string) ([]models.PracticeSession, error)
	ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeSession, error)
	Insert(ctx context.Context, session models.PracticeSession) (int64, error)
	Update(ctx context.Context, session models.PracticeSession) error
	Delete(ctx context.Context, id int64) error
	MarkCelebrationShown(ctx context.Context, id int64) error
	Fingerprint(ctx context.Context, ownerID int64) (string, error)
}

// TaskRepository handles scheduled-task data access
type TaskRepository interface {
	Get(ctx context.Context, id int64) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Insert(ctx context.Context, task models.Task) (int64, error)
	Update(ctx context.Context, task models.Task) error
	Delete(ctx context.Context, id int64) error
	RecentTitles(ctx context.Context, ownerID int64, limit int) ([]string, error)
	MarkCelebrationShown(ctx context.Context, id int64) error
	Fingerprint(ctx context.Context, ownerID int64) (string, error)
}

// TargetRepository handles practice-target data access
type TargetRepository interface {
	Get(ctx context.Context, id int64) (*models.PracticeTarget, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.PracticeTarget, error)
	ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeTarget, error)
	Insert(ctx context.Context, target models.PracticeTarget) (int64, error)
	Update(ctx context.Context, target models.PracticeTarget) error
	Delete(ctx context.Context, id int64) error
	Fingerprint(ctx context.Context, ownerID int64) (string, error)
}

// ChapterRepository maintains the derived per-chapter aggregates
type ChapterRepository interface {
	Get(ctx context.Context, ownerID int64, subject, chapter string) (*models.ChapterProgress, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.ChapterProgress, error)
	Upsert(ctx context.Context, progress models.ChapterProgress) error
	Delete(ctx context.Context, ownerID int64, subject, chapter string) error
}

// TagRepository handles quick-tag data access
type TagRepository interface {
	Get(ctx context.Context, id int64) (*models.QuickTag, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.QuickTag, error)
	Insert(ctx context.Context, tag models.QuickTag) (int64, error)
	Update(ctx context.Context, tag models.QuickTag) error
	Delete(ctx context.Context, id int64) error
}

// TriggerRepository handles celebration-trigger configuration
type TriggerRepository interface {
	Get(ctx context.Context, id int64) (*models.CelebrationTrigger, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.CelebrationTrigger, error)
	Insert(ctx context.Context, trigger models.CelebrationTrigger) (int64, error)
	Update(ctx context.Context, trigger models.CelebrationTrigger) error
	Delete(ctx context.Context, id int64) error
}

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, name string) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}
