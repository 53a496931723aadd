package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

type chapterRepository struct {
	db *sql.DB
}

// NewChapterRepository creates a new ChapterRepository implementation
func NewChapterRepository(db *sql.DB) repository.ChapterRepository {
	return &chapterRepository{db: db}
}

func scanChapter(scan func(dest ...any) error) (*models.ChapterProgress, error) {
	var c models.ChapterProgress
	var last sql.NullString
	err := scan(&c.ID, &c.OwnerID, &c.Subject, &c.Chapter, &c.TotalQuestions, &c.TotalTimeMinutes,
		&c.MasteryLevel, &c.AvgAccuracy, &last, &c.RevisionPriority)
	if err != nil {
		return nil, err
	}
	if last.Valid {
		c.LastPracticed = &last.String
	}
	return &c, nil
}

func (r *chapterRepository) Get(ctx context.Context, ownerID int64, subject, chapter string) (*models.ChapterProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("chapter_repo")
	log.Debug("getting chapter progress: owner_id=%d, subject=%s, chapter=%s", ownerID, subject, chapter)

	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, subject, chapter, total_questions, total_time_minutes, mastery_level, avg_accuracy, last_practiced, revision_priority
FROM chapter_progress
WHERE owner_id = ? AND subject = ? AND chapter = ?
`, ownerID, subject, chapter)
	c, err := scanChapter(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get chapter progress: %v", err)
		return nil, err
	}
	return c, nil
}

func (r *chapterRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.ChapterProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("chapter_repo")
	log.Debug("listing chapter progress: owner_id=%d", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, subject, chapter, total_questions, total_time_minutes, mastery_level, avg_accuracy, last_practiced, revision_priority
FROM chapter_progress
WHERE owner_id = ?
ORDER BY subject, chapter
`, ownerID)
	if err != nil {
		log.Error("failed to list chapter progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var chapters []models.ChapterProgress
	for rows.Next() {
		c, err := scanChapter(rows.Scan)
		if err != nil {
			log.Error("failed to scan chapter row: %v", err)
			return nil, err
		}
		chapters = append(chapters, *c)
	}
	return chapters, rows.Err()
}

// Upsert writes the aggregate as a single atomic statement keyed by
// (owner_id, subject, chapter), so back-to-back saves for the same chapter
// cannot lose updates.
func (r *chapterRepository) Upsert(ctx context.Context, c models.ChapterProgress) error {
	log := logger.FromContext(ctx).WithPrefix("chapter_repo")
	log.Debug("upserting chapter progress: owner_id=%d, subject=%s, chapter=%s, total=%d", c.OwnerID, c.Subject, c.Chapter, c.TotalQuestions)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO chapter_progress (owner_id, subject, chapter, total_questions, total_time_minutes, mastery_level, avg_accuracy, last_practiced, revision_priority)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(owner_id, subject, chapter) DO UPDATE SET
    total_questions = excluded.total_questions,
    total_time_minutes = excluded.total_time_minutes,
    mastery_level = excluded.mastery_level,
    avg_accuracy = excluded.avg_accuracy,
    last_practiced = excluded.last_practiced,
    revision_priority = excluded.revision_priority
`, c.OwnerID, c.Subject, c.Chapter, c.TotalQuestions, c.TotalTimeMinutes, c.MasteryLevel, c.AvgAccuracy, c.LastPracticed, c.RevisionPriority)
	if err != nil {
		log.Error("failed to upsert chapter progress: %v", err)
	}
	return err
}

func (r *chapterRepository) Delete(ctx context.Context, ownerID int64, subject, chapter string) error {
	log := logger.FromContext(ctx).WithPrefix("chapter_repo")
	log.Debug("deleting chapter progress: owner_id=%d, subject=%s, chapter=%s", ownerID, subject, chapter)

	_, err := r.db.ExecContext(ctx, `DELETE FROM chapter_progress WHERE owner_id = ? AND subject = ? AND chapter = ?`, ownerID, subject, chapter)
	if err != nil {
		log.Error("failed to delete chapter progress: %v", err)
	}
	return err
}
