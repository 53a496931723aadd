package services

import (
	"context"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
	"github.com/arnav/studyflow/internal/tracker"
)

// TargetProgressView pairs a target with its current progress.
type TargetProgressView struct {
	Target   models.PracticeTarget `json:"target"`
	Progress analytics.Progress    `json:"progress"`
}

// TargetService handles practice-target lifecycle. Derived fields (streaks,
// accountability, motivation) are recomputed here and by the session
// service, never accepted from the client.
type TargetService interface {
	Create(ctx context.Context, target models.PracticeTarget) (*models.PracticeTarget, error)
	Delete(ctx context.Context, ownerID, id int64) error
	ListWithProgress(ctx context.Context, ownerID int64) ([]TargetProgressView, error)
	Recompute(ctx context.Context, ownerID int64) error
	Fingerprint(ctx context.Context, ownerID int64) (string, error)
}

type targetService struct {
	targets  repository.TargetRepository
	sessions repository.SessionRepository
	params   analytics.Params
	clock    func() time.Time
}

// NewTargetService creates a new TargetService
func NewTargetService(targets repository.TargetRepository, sessions repository.SessionRepository, params analytics.Params, clock func() time.Time) TargetService {
	if clock == nil {
		clock = time.Now
	}
	return &targetService{targets: targets, sessions: sessions, params: params, clock: clock}
}

func validateTarget(t models.PracticeTarget) error {
	if !models.ValidTargetType(t.TargetType) {
		return errors.NewValidationError("target_type", "must be Daily, Weekly or Monthly")
	}
	if !models.ValidSubject(t.Subject) {
		return errors.NewValidationError("subject", "unknown subject")
	}
	// Non-positive targets would make every progress computation divide by
	// zero downstream; reject them here instead of coercing.
	if t.QuestionsTarget <= 0 {
		return errors.NewValidationError("questions_target", "must be positive")
	}
	if t.TimeTargetMinutes <= 0 {
		return errors.NewValidationError("time_target_minutes", "must be positive")
	}
	if _, err := time.Parse(analytics.DayFormat, t.StartDate); err != nil {
		return errors.NewValidationError("start_date", "must be a calendar day in YYYY-MM-DD form")
	}
	if _, err := time.Parse(analytics.DayFormat, t.EndDate); err != nil {
		return errors.NewValidationError("end_date", "must be a calendar day in YYYY-MM-DD form")
	}
	if t.EndDate < t.StartDate {
		return errors.NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

func (s *targetService) Create(ctx context.Context, target models.PracticeTarget) (*models.PracticeTarget, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating target: owner_id=%d, type=%s, subject=%s", target.OwnerID, target.TargetType, target.Subject)

	if err := validateTarget(target); err != nil {
		return nil, err
	}

	// Derived fields always start clean.
	target.StreakCount = 0
	target.BestStreak = 0
	target.AccountabilityScore = 0
	target.MotivationLevel = models.MotivationLow
	target.LastMetPeriod = ""

	id, err := s.targets.Insert(ctx, target)
	if err != nil {
		log.Error("failed to insert target: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.targets.Get(ctx, id)
	if err != nil || created == nil {
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *targetService) Delete(ctx context.Context, ownerID, id int64) error {
	existing, err := s.targets.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return errors.NewNotFoundError("target", id)
	}
	if err := s.targets.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *targetService) ListWithProgress(ctx context.Context, ownerID int64) ([]TargetProgressView, error) {
	log := logger.FromContext(ctx)

	targets, err := s.targets.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list targets: %v", err)
		return nil, errors.NewInternalError(err)
	}

	evalDay := s.clock().Format(analytics.DayFormat)
	views := make([]TargetProgressView, 0, len(targets))
	for _, t := range targets {
		sessions, err := s.sessions.ListForSubject(ctx, ownerID, t.Subject)
		if err != nil {
			log.Error("failed to list sessions for target %d: %v", t.ID, err)
			return nil, errors.NewInternalError(err)
		}
		views = append(views, TargetProgressView{
			Target:   t,
			Progress: analytics.TargetProgress(t, sessions, evalDay),
		})
	}
	return views, nil
}

// Recompute refreshes derived fields for all of an owner's targets, e.g.
// after a day rolls over without new sessions.
func (s *targetService) Recompute(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	targets, err := s.targets.ListByOwner(ctx, ownerID)
	if err != nil {
		return errors.NewInternalError(err)
	}

	now := s.clock()
	for _, t := range targets {
		sessions, err := s.sessions.ListForSubject(ctx, ownerID, t.Subject)
		if err != nil {
			return errors.NewInternalError(err)
		}
		updated := tracker.Recompute(t, sessions, now, s.params)
		if err := s.targets.Update(ctx, updated); err != nil {
			log.Error("failed to persist recomputed target %d: %v", t.ID, err)
			return errors.NewInternalError(err)
		}
	}
	return nil
}

func (s *targetService) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	return s.targets.Fingerprint(ctx, ownerID)
}
