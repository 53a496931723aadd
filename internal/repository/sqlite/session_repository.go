package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const sessionColumns = `id, owner_id, date, subject, chapter, source, source_details, questions_target, questions_solved, time_spent_minutes, difficulty_level, accuracy_percentage, notes, celebration_shown, created_at, updated_at`

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func scanSession(scan func(dest ...any) error) (*models.PracticeSession, error) {
	var s models.PracticeSession
	var difficulty sql.NullString
	var accuracy sql.NullFloat64
	err := scan(&s.ID, &s.OwnerID, &s.Date, &s.Subject, &s.Chapter, &s.Source, &s.SourceDetails,
		&s.QuestionsTarget, &s.QuestionsSolved, &s.TimeSpentMinutes, &difficulty, &accuracy,
		&s.Notes, &s.CelebrationShown, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if difficulty.Valid {
		s.DifficultyLevel = &difficulty.String
	}
	if accuracy.Valid {
		s.AccuracyPercentage = &accuracy.Float64
	}
	return &s, nil
}

func (r *sessionRepository) Get(ctx context.Context, id int64) (*models.PracticeSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session: id=%d", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM practice_sessions WHERE id = ?`, id)
	s, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.PracticeSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing sessions: owner_id=%d, subject=%s, chapter=%s, from=%s, to=%s",
		filter.OwnerID, filter.Subject, filter.Chapter, filter.DateFrom, filter.DateTo)

	query := sqlBuilder.Select(
		"id", "owner_id", "date", "subject", "chapter", "source", "source_details",
		"questions_target", "questions_solved", "time_spent_minutes", "difficulty_level",
		"accuracy_percentage", "notes", "celebration_shown", "created_at", "updated_at",
	).From("practice_sessions").Where(squirrel.Eq{"owner_id": filter.OwnerID})

	if filter.Subject != "" {
		query = query.Where(squirrel.Eq{"subject": filter.Subject})
	}
	if filter.Chapter != "" {
		query = query.Where(squirrel.Eq{"chapter": filter.Chapter})
	}
	if filter.DateFrom != "" {
		query = query.Where(squirrel.GtOrEq{"date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		query = query.Where(squirrel.LtOrEq{"date": filter.DateTo})
	}

	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy("date " + orderDir).OrderBy("id " + orderDir)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, rows.Err()
}

func (r *sessionRepository) ListForChapter(ctx context.Context, ownerID int64, subject, chapter string) ([]models.PracticeSession, error) {
	return r.List(ctx, models.SessionFilter{OwnerID: ownerID, Subject: subject, Chapter: chapter})
}

func (r *sessionRepository) ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeSession, error) {
	return r.List(ctx, models.SessionFilter{OwnerID: ownerID, Subject: subject})
}

func (r *sessionRepository) Insert(ctx context.Context, s models.PracticeSession) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: owner_id=%d, date=%s, subject=%s, chapter=%s", s.OwnerID, s.Date, s.Subject, s.Chapter)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO practice_sessions (owner_id, date, subject, chapter, source, source_details, questions_target, questions_solved, time_spent_minutes, difficulty_level, accuracy_percentage, notes, celebration_shown)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, s.OwnerID, s.Date, s.Subject, s.Chapter, s.Source, s.SourceDetails, s.QuestionsTarget, s.QuestionsSolved,
		s.TimeSpentMinutes, s.DifficultyLevel, s.AccuracyPercentage, s.Notes, s.CelebrationShown)
	if err != nil {
		log.Error("failed to insert session: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get session id: %v", err)
		return 0, err
	}
	log.Debug("session inserted: id=%d", id)
	return id, nil
}

func (r *sessionRepository) Update(ctx context.Context, s models.PracticeSession) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("updating session: id=%d", s.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE practice_sessions
SET date = ?, subject = ?, chapter = ?, source = ?, source_details = ?, questions_target = ?, questions_solved = ?,
    time_spent_minutes = ?, difficulty_level = ?, accuracy_percentage = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, s.Date, s.Subject, s.Chapter, s.Source, s.SourceDetails, s.QuestionsTarget, s.QuestionsSolved,
		s.TimeSpentMinutes, s.DifficultyLevel, s.AccuracyPercentage, s.Notes, s.ID)
	if err != nil {
		log.Error("failed to update session: %v", err)
	}
	return err
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("deleting session: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM practice_sessions WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete session: %v", err)
	}
	return err
}

func (r *sessionRepository) MarkCelebrationShown(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("marking celebration shown: id=%d", id)

	// Guarded update so two concurrent evaluations cannot both claim the fire.
	res, err := r.db.ExecContext(ctx, `UPDATE practice_sessions SET celebration_shown = 1 WHERE id = ? AND celebration_shown = 0`, id)
	if err != nil {
		log.Error("failed to mark celebration shown: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Fingerprint identifies the current state of an owner's session set for
// cache keying: it changes whenever a session is added, edited or removed.
func (r *sessionRepository) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	var count int
	var maxUpdated sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(updated_at) FROM practice_sessions WHERE owner_id = ?`, ownerID,
	).Scan(&count, &maxUpdated)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", count, maxUpdated.String), nil
}
