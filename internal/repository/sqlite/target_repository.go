package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

const targetColumns = `id, owner_id, target_type, subject, questions_target, time_target_minutes, start_date, end_date, streak_count, best_streak, accountability_score, motivation_level, last_met_period, created_at, updated_at`

type targetRepository struct {
	db *sql.DB
}

// NewTargetRepository creates a new TargetRepository implementation
func NewTargetRepository(db *sql.DB) repository.TargetRepository {
	return &targetRepository{db: db}
}

func scanTarget(scan func(dest ...any) error) (*models.PracticeTarget, error) {
	var t models.PracticeTarget
	err := scan(&t.ID, &t.OwnerID, &t.TargetType, &t.Subject, &t.QuestionsTarget, &t.TimeTargetMinutes,
		&t.StartDate, &t.EndDate, &t.StreakCount, &t.BestStreak, &t.AccountabilityScore,
		&t.MotivationLevel, &t.LastMetPeriod, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *targetRepository) Get(ctx context.Context, id int64) (*models.PracticeTarget, error) {
	log := logger.FromContext(ctx).WithPrefix("target_repo")
	log.Debug("getting target: id=%d", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+targetColumns+` FROM practice_targets WHERE id = ?`, id)
	t, err := scanTarget(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("target not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get target: %v", err)
		return nil, err
	}
	return t, nil
}

func (r *targetRepository) list(ctx context.Context, query string, args ...any) ([]models.PracticeTarget, error) {
	log := logger.FromContext(ctx).WithPrefix("target_repo")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list targets: %v", err)
		return nil, err
	}
	defer rows.Close()

	var targets []models.PracticeTarget
	for rows.Next() {
		t, err := scanTarget(rows.Scan)
		if err != nil {
			log.Error("failed to scan target row: %v", err)
			return nil, err
		}
		targets = append(targets, *t)
	}
	return targets, rows.Err()
}

func (r *targetRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.PracticeTarget, error) {
	return r.list(ctx, `SELECT `+targetColumns+` FROM practice_targets WHERE owner_id = ? ORDER BY id`, ownerID)
}

func (r *targetRepository) ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeTarget, error) {
	return r.list(ctx, `SELECT `+targetColumns+` FROM practice_targets WHERE owner_id = ? AND subject = ? ORDER BY id`, ownerID, subject)
}

func (r *targetRepository) Insert(ctx context.Context, t models.PracticeTarget) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("target_repo")
	log.Debug("inserting target: owner_id=%d, type=%s, subject=%s", t.OwnerID, t.TargetType, t.Subject)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO practice_targets (owner_id, target_type, subject, questions_target, time_target_minutes, start_date, end_date, streak_count, best_streak, accountability_score, motivation_level, last_met_period)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, t.OwnerID, t.TargetType, t.Subject, t.QuestionsTarget, t.TimeTargetMinutes, t.StartDate, t.EndDate,
		t.StreakCount, t.BestStreak, t.AccountabilityScore, t.MotivationLevel, t.LastMetPeriod)
	if err != nil {
		log.Error("failed to insert target: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *targetRepository) Update(ctx context.Context, t models.PracticeTarget) error {
	log := logger.FromContext(ctx).WithPrefix("target_repo")
	log.Debug("updating target: id=%d, streak=%d, best=%d", t.ID, t.StreakCount, t.BestStreak)

	_, err := r.db.ExecContext(ctx, `
UPDATE practice_targets
SET target_type = ?, subject = ?, questions_target = ?, time_target_minutes = ?, start_date = ?, end_date = ?,
    streak_count = ?, best_streak = ?, accountability_score = ?, motivation_level = ?, last_met_period = ?,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, t.TargetType, t.Subject, t.QuestionsTarget, t.TimeTargetMinutes, t.StartDate, t.EndDate,
		t.StreakCount, t.BestStreak, t.AccountabilityScore, t.MotivationLevel, t.LastMetPeriod, t.ID)
	if err != nil {
		log.Error("failed to update target: %v", err)
	}
	return err
}

func (r *targetRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("target_repo")
	log.Debug("deleting target: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM practice_targets WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete target: %v", err)
	}
	return err
}

// Fingerprint identifies the current state of an owner's target set for
// cache keying: it changes whenever a target is added, edited or removed.
func (r *targetRepository) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	var count int
	var maxUpdated sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(updated_at) FROM practice_targets WHERE owner_id = ?`, ownerID,
	).Scan(&count, &maxUpdated)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", count, maxUpdated.String), nil
}
