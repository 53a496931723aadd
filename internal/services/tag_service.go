package services

import (
	"context"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

// TagService handles quick-tag business logic
type TagService interface {
	Create(ctx context.Context, tag models.QuickTag) (*models.QuickTag, error)
	Update(ctx context.Context, tag models.QuickTag) (*models.QuickTag, error)
	Delete(ctx context.Context, ownerID, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]models.QuickTag, error)
	EnsureDefaults(ctx context.Context, ownerID int64) error
}

type tagService struct {
	tags repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

// defaultTags are seeded for every new profile. The practice tag carries the
// standard source taxonomy so the session form can offer detail options.
var defaultTags = []models.QuickTag{
	{Name: "Theory", Icon: "book", StudyNature: models.NatureTheory, ColorClass: "tag-theory", IsDefault: true},
	{Name: "Practice", Icon: "pencil", StudyNature: models.NaturePractice, ColorClass: "tag-practice", IsDefault: true,
		PracticeConfig: &models.PracticeConfig{Sources: map[string][]string{
			models.SourceModule: {"Level 1", "Level 2"},
			models.SourcePYQs:   {"Mains", "Advanced"},
			models.SourceCPPs:   nil,
			models.SourceNCERT:  {"Examples", "Exercises"},
		}},
	},
	{Name: "Revision", Icon: "refresh", StudyNature: models.NatureRevision, ColorClass: "tag-revision", IsDefault: true},
}

func validateTag(t models.QuickTag) error {
	if t.Name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}
	if !models.ValidStudyNature(t.StudyNature) {
		return errors.NewValidationError("study_nature", "must be Theory, Practice or Revision")
	}
	if t.PracticeConfig != nil {
		if t.StudyNature != models.NaturePractice {
			return errors.NewValidationError("practice_config", "only allowed on Practice tags")
		}
		for source := range t.PracticeConfig.Sources {
			if !models.ValidSource(source) {
				return errors.NewValidationError("practice_config", "unknown source: "+source)
			}
		}
	}
	return nil
}

func (s *tagService) Create(ctx context.Context, tag models.QuickTag) (*models.QuickTag, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating tag: owner_id=%d, name=%s", tag.OwnerID, tag.Name)

	if err := validateTag(tag); err != nil {
		return nil, err
	}
	tag.IsDefault = false

	id, err := s.tags.Insert(ctx, tag)
	if err != nil {
		log.Error("failed to insert tag: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.tags.Get(ctx, id)
}

func (s *tagService) Update(ctx context.Context, tag models.QuickTag) (*models.QuickTag, error) {
	existing, err := s.tags.Get(ctx, tag.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != tag.OwnerID {
		return nil, errors.NewNotFoundError("tag", tag.ID)
	}

	if err := validateTag(tag); err != nil {
		return nil, err
	}
	tag.IsDefault = existing.IsDefault

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return s.tags.Get(ctx, tag.ID)
}

func (s *tagService) Delete(ctx context.Context, ownerID, id int64) error {
	existing, err := s.tags.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return errors.NewNotFoundError("tag", id)
	}
	if existing.IsDefault {
		return errors.NewBadRequestError("default tags cannot be deleted")
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *tagService) ListByOwner(ctx context.Context, ownerID int64) ([]models.QuickTag, error) {
	tags, err := s.tags.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return tags, nil
}

// EnsureDefaults seeds the default taxonomy for a profile that has no tags
// yet. Safe to call repeatedly.
func (s *tagService) EnsureDefaults(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	existing, err := s.tags.ListByOwner(ctx, ownerID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if len(existing) > 0 {
		return nil
	}

	log.Info("seeding default tags for owner %d", ownerID)
	for _, tag := range defaultTags {
		tag.OwnerID = ownerID
		if _, err := s.tags.Insert(ctx, tag); err != nil {
			return errors.NewInternalError(err)
		}
	}
	return nil
}
