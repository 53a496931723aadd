package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `SELECT id, name, exam_year, created_at FROM profiles WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.ExamYear, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, exam_year, created_at FROM profiles ORDER BY name`)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.ExamYear, &p.CreatedAt); err != nil {
			log.Error("failed to scan profile row: %v", err)
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Upsert(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting profile: name=%s", name)

	_, err := r.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}

	var p models.Profile
	err = r.db.QueryRowContext(ctx, `SELECT id, name, exam_year, created_at FROM profiles WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.ExamYear, &p.CreatedAt)
	if err != nil {
		log.Error("failed to load upserted profile: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("deleting profile: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete profile: %v", err)
	}
	return err
}
