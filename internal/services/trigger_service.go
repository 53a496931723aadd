package services

import (
	"context"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

// TriggerService handles celebration-trigger configuration
type TriggerService interface {
	Create(ctx context.Context, trigger models.CelebrationTrigger) (*models.CelebrationTrigger, error)
	Update(ctx context.Context, trigger models.CelebrationTrigger) (*models.CelebrationTrigger, error)
	Delete(ctx context.Context, ownerID, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]models.CelebrationTrigger, error)
}

type triggerService struct {
	triggers repository.TriggerRepository
}

// NewTriggerService creates a new TriggerService
func NewTriggerService(triggers repository.TriggerRepository) TriggerService {
	return &triggerService{triggers: triggers}
}

func validateTrigger(trigger models.CelebrationTrigger) error {
	if !models.ValidTriggerType(trigger.TriggerType) {
		return errors.NewValidationError("trigger_type", "unknown trigger type")
	}
	if trigger.TriggerValue <= 0 {
		return errors.NewValidationError("trigger_value", "must be greater than zero")
	}
	return nil
}

func (s *triggerService) Create(ctx context.Context, trigger models.CelebrationTrigger) (*models.CelebrationTrigger, error) {
	if err := validateTrigger(trigger); err != nil {
		return nil, err
	}

	id, err := s.triggers.Insert(ctx, trigger)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	created, err := s.triggers.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *triggerService) Update(ctx context.Context, trigger models.CelebrationTrigger) (*models.CelebrationTrigger, error) {
	if err := validateTrigger(trigger); err != nil {
		return nil, err
	}

	existing, err := s.triggers.Get(ctx, trigger.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != trigger.OwnerID {
		return nil, errors.NewNotFoundError("celebration trigger", trigger.ID)
	}

	if err := s.triggers.Update(ctx, trigger); err != nil {
		return nil, errors.NewInternalError(err)
	}
	updated, err := s.triggers.Get(ctx, trigger.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return updated, nil
}

func (s *triggerService) Delete(ctx context.Context, ownerID, id int64) error {
	existing, err := s.triggers.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return errors.NewNotFoundError("celebration trigger", id)
	}
	if err := s.triggers.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *triggerService) ListByOwner(ctx context.Context, ownerID int64) ([]models.CelebrationTrigger, error) {
	triggers, err := s.triggers.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return triggers, nil
}
