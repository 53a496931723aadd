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

const taskColumns = `id, owner_id, title, subject, chapter, scheduled_date, completed, priority, duration_minutes, celebration_shown, created_at, updated_at`

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository implementation
func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	var t models.Task
	err := scan(&t.ID, &t.OwnerID, &t.Title, &t.Subject, &t.Chapter, &t.ScheduledDate,
		&t.Completed, &t.Priority, &t.DurationMinutes, &t.CelebrationShown, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) Get(ctx context.Context, id int64) (*models.Task, error) {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("getting task: id=%d", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("task not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get task: %v", err)
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("listing tasks: owner_id=%d, subject=%s, from=%s, to=%s", filter.OwnerID, filter.Subject, filter.DateFrom, filter.DateTo)

	query := sqlBuilder.Select(
		"id", "owner_id", "title", "subject", "chapter", "scheduled_date",
		"completed", "priority", "duration_minutes", "celebration_shown", "created_at", "updated_at",
	).From("tasks").Where(squirrel.Eq{"owner_id": filter.OwnerID})

	if filter.Subject != "" {
		query = query.Where(squirrel.Eq{"subject": filter.Subject})
	}
	if filter.DateFrom != "" {
		query = query.Where(squirrel.GtOrEq{"scheduled_date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		query = query.Where(squirrel.LtOrEq{"scheduled_date": filter.DateTo})
	}
	if filter.Completed != nil {
		query = query.Where(squirrel.Eq{"completed": *filter.Completed})
	}

	query = query.OrderBy("scheduled_date ASC").OrderBy("priority DESC").OrderBy("id ASC")
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
		log.Error("failed to list tasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			log.Error("failed to scan task row: %v", err)
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	log.Debug("found %d tasks", len(tasks))
	return tasks, rows.Err()
}

func (r *taskRepository) Insert(ctx context.Context, t models.Task) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("inserting task: owner_id=%d, title=%s, date=%s", t.OwnerID, t.Title, t.ScheduledDate)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (owner_id, title, subject, chapter, scheduled_date, completed, priority, duration_minutes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, t.OwnerID, t.Title, t.Subject, t.Chapter, t.ScheduledDate, t.Completed, t.Priority, t.DurationMinutes)
	if err != nil {
		log.Error("failed to insert task: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *taskRepository) Update(ctx context.Context, t models.Task) error {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("updating task: id=%d, completed=%t", t.ID, t.Completed)

	_, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET title = ?, subject = ?, chapter = ?, scheduled_date = ?, completed = ?, priority = ?, duration_minutes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, t.Title, t.Subject, t.Chapter, t.ScheduledDate, t.Completed, t.Priority, t.DurationMinutes, t.ID)
	if err != nil {
		log.Error("failed to update task: %v", err)
	}
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("deleting task: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete task: %v", err)
	}
	return err
}

func (r *taskRepository) MarkCelebrationShown(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("marking celebration shown: id=%d", id)

	// Guarded update so two concurrent evaluations cannot both claim the fire.
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET celebration_shown = 1 WHERE id = ? AND celebration_shown = 0`, id)
	if err != nil {
		log.Error("failed to mark celebration shown: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Fingerprint identifies the current state of an owner's task set for cache
// keying: it changes whenever a task is added, edited or removed.
func (r *taskRepository) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	var count int
	var maxUpdated sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(updated_at) FROM tasks WHERE owner_id = ?`, ownerID,
	).Scan(&count, &maxUpdated)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", count, maxUpdated.String), nil
}

func (r *taskRepository) RecentTitles(ctx context.Context, ownerID int64, limit int) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT title FROM tasks WHERE owner_id = ? ORDER BY scheduled_date DESC, id DESC LIMIT ?
`, ownerID, limit)
	if err != nil {
		log.Error("failed to list recent task titles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
