package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

type triggerRepository struct {
	db *sql.DB
}

// NewTriggerRepository creates a new TriggerRepository implementation
func NewTriggerRepository(db *sql.DB) repository.TriggerRepository {
	return &triggerRepository{db: db}
}

func (r *triggerRepository) Get(ctx context.Context, id int64) (*models.CelebrationTrigger, error) {
	log := logger.FromContext(ctx).WithPrefix("trigger_repo")

	var t models.CelebrationTrigger
	err := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, trigger_type, trigger_value, is_active, created_at
FROM celebration_triggers WHERE id = ?
`, id).Scan(&t.ID, &t.OwnerID, &t.TriggerType, &t.TriggerValue, &t.IsActive, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get trigger: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *triggerRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.CelebrationTrigger, error) {
	log := logger.FromContext(ctx).WithPrefix("trigger_repo")
	log.Debug("listing triggers: owner_id=%d", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, trigger_type, trigger_value, is_active, created_at
FROM celebration_triggers WHERE owner_id = ? ORDER BY id
`, ownerID)
	if err != nil {
		log.Error("failed to list triggers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var triggers []models.CelebrationTrigger
	for rows.Next() {
		var t models.CelebrationTrigger
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.TriggerType, &t.TriggerValue, &t.IsActive, &t.CreatedAt); err != nil {
			log.Error("failed to scan trigger row: %v", err)
			return nil, err
		}
		triggers = append(triggers, t)
	}
	return triggers, rows.Err()
}

func (r *triggerRepository) Insert(ctx context.Context, t models.CelebrationTrigger) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("trigger_repo")
	log.Debug("inserting trigger: owner_id=%d, type=%s, value=%g", t.OwnerID, t.TriggerType, t.TriggerValue)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO celebration_triggers (owner_id, trigger_type, trigger_value, is_active)
VALUES (?, ?, ?, ?)
`, t.OwnerID, t.TriggerType, t.TriggerValue, t.IsActive)
	if err != nil {
		log.Error("failed to insert trigger: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *triggerRepository) Update(ctx context.Context, t models.CelebrationTrigger) error {
	log := logger.FromContext(ctx).WithPrefix("trigger_repo")
	log.Debug("updating trigger: id=%d, active=%t", t.ID, t.IsActive)

	_, err := r.db.ExecContext(ctx, `
UPDATE celebration_triggers SET trigger_type = ?, trigger_value = ?, is_active = ? WHERE id = ?
`, t.TriggerType, t.TriggerValue, t.IsActive, t.ID)
	if err != nil {
		log.Error("failed to update trigger: %v", err)
	}
	return err
}

func (r *triggerRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("trigger_repo")
	log.Debug("deleting trigger: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM celebration_triggers WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete trigger: %v", err)
	}
	return err
}
