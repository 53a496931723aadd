package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new TagRepository implementation
func NewTagRepository(db *sql.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func marshalPracticeConfig(cfg *models.PracticeConfig) (any, error) {
	if cfg == nil {
		return nil, nil
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanTag(scan func(dest ...any) error) (*models.QuickTag, error) {
	var t models.QuickTag
	var cfg sql.NullString
	err := scan(&t.ID, &t.OwnerID, &t.Name, &t.Icon, &t.StudyNature, &t.ColorClass, &t.IsDefault, &cfg, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if cfg.Valid && cfg.String != "" {
		var pc models.PracticeConfig
		if err := json.Unmarshal([]byte(cfg.String), &pc); err != nil {
			return nil, err
		}
		t.PracticeConfig = &pc
	}
	return &t, nil
}

func (r *tagRepository) Get(ctx context.Context, id int64) (*models.QuickTag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("getting tag: id=%d", id)

	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, name, icon, study_nature, color_class, is_default, practice_config, created_at
FROM quick_tags WHERE id = ?
`, id)
	t, err := scanTag(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get tag: %v", err)
		return nil, err
	}
	return t, nil
}

func (r *tagRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.QuickTag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("listing tags: owner_id=%d", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, name, icon, study_nature, color_class, is_default, practice_config, created_at
FROM quick_tags WHERE owner_id = ? ORDER BY is_default DESC, name
`, ownerID)
	if err != nil {
		log.Error("failed to list tags: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tags []models.QuickTag
	for rows.Next() {
		t, err := scanTag(rows.Scan)
		if err != nil {
			log.Error("failed to scan tag row: %v", err)
			return nil, err
		}
		tags = append(tags, *t)
	}
	return tags, rows.Err()
}

func (r *tagRepository) Insert(ctx context.Context, t models.QuickTag) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("inserting tag: owner_id=%d, name=%s, nature=%s", t.OwnerID, t.Name, t.StudyNature)

	cfg, err := marshalPracticeConfig(t.PracticeConfig)
	if err != nil {
		log.Error("failed to marshal practice config: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO quick_tags (owner_id, name, icon, study_nature, color_class, is_default, practice_config)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, t.OwnerID, t.Name, t.Icon, t.StudyNature, t.ColorClass, t.IsDefault, cfg)
	if err != nil {
		log.Error("failed to insert tag: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *tagRepository) Update(ctx context.Context, t models.QuickTag) error {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("updating tag: id=%d", t.ID)

	cfg, err := marshalPracticeConfig(t.PracticeConfig)
	if err != nil {
		log.Error("failed to marshal practice config: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE quick_tags
SET name = ?, icon = ?, study_nature = ?, color_class = ?, is_default = ?, practice_config = ?
WHERE id = ?
`, t.Name, t.Icon, t.StudyNature, t.ColorClass, t.IsDefault, cfg, t.ID)
	if err != nil {
		log.Error("failed to update tag: %v", err)
	}
	return err
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("deleting tag: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM quick_tags WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete tag: %v", err)
	}
	return err
}
