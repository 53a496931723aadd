package services

import (
	"context"
	"strings"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

// ProfileService handles profile-related business logic
type ProfileService interface {
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, name string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileService struct {
	profiles repository.ProfileRepository
	tags     TagService
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles repository.ProfileRepository, tags TagService) ProfileService {
	return &profileService{profiles: profiles, tags: tags}
}

func (s *profileService) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return profiles, nil
}

func (s *profileService) CreateProfile(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	profile, err := s.profiles.Upsert(ctx, name)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.tags.EnsureDefaults(ctx, profile.ID); err != nil {
		log.Warn("failed to seed default tags for profile %d: %v", profile.ID, err)
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id int64) error {
	existing, err := s.profiles.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil {
		return errors.NewNotFoundError("profile", id)
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
