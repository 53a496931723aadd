package services

import (
	"context"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/celebration"
	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
	"github.com/arnav/studyflow/internal/tracker"
)

// SessionService handles practice-session business logic. Every write also
// refreshes the chapter aggregate, recomputes affected targets, and asks the
// celebration evaluator whether the event deserves a celebration.
type SessionService interface {
	Create(ctx context.Context, session models.PracticeSession) (*models.PracticeSession, *celebration.Decision, error)
	Update(ctx context.Context, session models.PracticeSession) (*models.PracticeSession, error)
	Delete(ctx context.Context, ownerID, id int64) error
	Get(ctx context.Context, ownerID, id int64) (*models.PracticeSession, error)
	List(ctx context.Context, filter models.SessionFilter) ([]models.PracticeSession, error)
}

type sessionService struct {
	sessions repository.SessionRepository
	chapters repository.ChapterRepository
	targets  repository.TargetRepository
	triggers repository.TriggerRepository
	params   analytics.Params
	clock    func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessions repository.SessionRepository,
	chapters repository.ChapterRepository,
	targets repository.TargetRepository,
	triggers repository.TriggerRepository,
	params analytics.Params,
	clock func() time.Time,
) SessionService {
	if clock == nil {
		clock = time.Now
	}
	return &sessionService{
		sessions: sessions,
		chapters: chapters,
		targets:  targets,
		triggers: triggers,
		params:   params,
		clock:    clock,
	}
}

func validateSession(s models.PracticeSession) error {
	if _, err := time.Parse(analytics.DayFormat, s.Date); err != nil {
		return errors.NewValidationError("date", "must be a calendar day in YYYY-MM-DD form")
	}
	if !models.ValidSubject(s.Subject) {
		return errors.NewValidationError("subject", "unknown subject")
	}
	if s.Chapter == "" {
		return errors.NewValidationError("chapter", "must not be empty")
	}
	if !models.ValidSource(s.Source) {
		return errors.NewValidationError("source", "unknown source")
	}
	if s.QuestionsTarget < 0 {
		return errors.NewValidationError("questions_target", "must not be negative")
	}
	if s.QuestionsSolved < 0 {
		return errors.NewValidationError("questions_solved", "must not be negative")
	}
	if s.TimeSpentMinutes < 0 {
		return errors.NewValidationError("time_spent_minutes", "must not be negative")
	}
	if s.DifficultyLevel != nil && !models.ValidDifficulty(*s.DifficultyLevel) {
		return errors.NewValidationError("difficulty_level", "unknown difficulty")
	}
	return nil
}

// clampAccuracy forces a present accuracy into [0,100]; out-of-range values
// are clamped rather than rejected.
func clampAccuracy(s *models.PracticeSession) {
	if s.AccuracyPercentage == nil {
		return
	}
	v := *s.AccuracyPercentage
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.AccuracyPercentage = &v
}

func (s *sessionService) Create(ctx context.Context, session models.PracticeSession) (*models.PracticeSession, *celebration.Decision, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating session: owner_id=%d, subject=%s, chapter=%s", session.OwnerID, session.Subject, session.Chapter)

	if err := validateSession(session); err != nil {
		return nil, nil, err
	}
	clampAccuracy(&session)

	id, err := s.sessions.Insert(ctx, session)
	if err != nil {
		log.Error("failed to insert session: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	created, err := s.sessions.Get(ctx, id)
	if err != nil || created == nil {
		log.Error("failed to reload created session: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	targetEvents, err := s.syncDerivedState(ctx, *created)
	if err != nil {
		// The session itself is saved; derived state will self-heal on the
		// next write for the same chapter/subject.
		log.Warn("failed to refresh derived state: %v", err)
	}

	decision := s.evaluateCelebration(ctx, *created, targetEvents)
	return created, decision, nil
}

func (s *sessionService) Update(ctx context.Context, session models.PracticeSession) (*models.PracticeSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating session: id=%d", session.ID)

	existing, err := s.sessions.Get(ctx, session.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != session.OwnerID {
		return nil, errors.NewNotFoundError("session", session.ID)
	}

	if err := validateSession(session); err != nil {
		return nil, err
	}
	clampAccuracy(&session)

	if err := s.sessions.Update(ctx, session); err != nil {
		log.Error("failed to update session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	updated, err := s.sessions.Get(ctx, session.ID)
	if err != nil || updated == nil {
		return nil, errors.NewInternalError(err)
	}

	if _, err := s.syncDerivedState(ctx, *updated); err != nil {
		log.Warn("failed to refresh derived state: %v", err)
	}
	// An edit may have moved the session to a different chapter; refresh the
	// old one too so its totals drop.
	if existing.Subject != updated.Subject || existing.Chapter != updated.Chapter {
		if err := s.syncChapter(ctx, existing.OwnerID, existing.Subject, existing.Chapter); err != nil {
			log.Warn("failed to refresh previous chapter: %v", err)
		}
	}
	return updated, nil
}

func (s *sessionService) Delete(ctx context.Context, ownerID, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting session: id=%d", id)

	existing, err := s.sessions.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return errors.NewNotFoundError("session", id)
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		log.Error("failed to delete session: %v", err)
		return errors.NewInternalError(err)
	}

	if _, err := s.syncDerivedState(ctx, *existing); err != nil {
		log.Warn("failed to refresh derived state after delete: %v", err)
	}
	return nil
}

func (s *sessionService) Get(ctx context.Context, ownerID, id int64) (*models.PracticeSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if session == nil || session.OwnerID != ownerID {
		return nil, errors.NewNotFoundError("session", id)
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, filter models.SessionFilter) ([]models.PracticeSession, error) {
	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}

// syncDerivedState refreshes the chapter aggregate and the targets touched
// by the given session. It returns a target-met event for every target this
// write pushed over the line, so the celebration pass can react to them.
func (s *sessionService) syncDerivedState(ctx context.Context, session models.PracticeSession) ([]celebration.Event, error) {
	if err := s.syncChapter(ctx, session.OwnerID, session.Subject, session.Chapter); err != nil {
		return nil, err
	}
	return s.recomputeTargets(ctx, session)
}

// syncChapter recomputes the (owner, subject, chapter) aggregate from its
// sessions and writes it back as one atomic upsert.
func (s *sessionService) syncChapter(ctx context.Context, ownerID int64, subject, chapter string) error {
	sessions, err := s.sessions.ListForChapter(ctx, ownerID, subject, chapter)
	if err != nil {
		return err
	}

	progress := models.ChapterProgress{
		OwnerID: ownerID,
		Subject: subject,
		Chapter: chapter,
	}
	var lastPracticed string
	for _, sess := range sessions {
		progress.TotalQuestions += sess.QuestionsSolved
		progress.TotalTimeMinutes += sess.TimeSpentMinutes
		if sess.QuestionsSolved > 0 && sess.Date > lastPracticed {
			lastPracticed = sess.Date
		}
	}
	if lastPracticed != "" {
		progress.LastPracticed = &lastPracticed
	}
	progress.AvgAccuracy = analytics.AverageAccuracy(sessions)
	progress.MasteryLevel = analytics.MasteryLevel(progress.TotalQuestions, progress.AvgAccuracy)
	progress.RevisionPriority = analytics.RevisionPriority(analytics.ChapterStatus(progress, s.clock()))

	return s.chapters.Upsert(ctx, progress)
}

func (s *sessionService) recomputeTargets(ctx context.Context, session models.PracticeSession) ([]celebration.Event, error) {
	targets, err := s.targets.ListForSubject(ctx, session.OwnerID, session.Subject)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, nil
	}

	sessions, err := s.sessions.ListForSubject(ctx, session.OwnerID, session.Subject)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	evalDay := now.Format(analytics.DayFormat)
	var events []celebration.Event
	for _, t := range targets {
		updated := tracker.Recompute(t, sessions, now, s.params)
		if err := s.targets.Update(ctx, updated); err != nil {
			return events, err
		}
		// A target whose current period just became met is a celebration
		// event; the period transition keeps it to one event per period.
		period := tracker.PeriodKey(t.TargetType, now)
		if updated.LastMetPeriod == period && t.LastMetPeriod != period {
			events = append(events, celebration.Event{
				Type:         models.TriggerTargetMet,
				Value:        analytics.TargetProgress(updated, sessions, evalDay).Combined(),
				RecordID:     session.ID,
				AlreadyShown: session.CelebrationShown,
			})
		}
	}
	return events, nil
}

// evaluateCelebration runs the trigger rules for a freshly created session.
// extra carries the target-met events the write produced; they are checked
// after the session's own events. Any failure here only suppresses the
// celebration, never the write.
func (s *sessionService) evaluateCelebration(ctx context.Context, session models.PracticeSession, extra []celebration.Event) *celebration.Decision {
	log := logger.FromContext(ctx)

	triggers, err := s.triggers.ListByOwner(ctx, session.OwnerID)
	if err != nil {
		log.Warn("failed to load celebration triggers: %v", err)
		triggers = nil
	}

	events := []celebration.Event{{
		Type:         models.TriggerQuestionsSolved,
		Value:        float64(session.QuestionsSolved),
		RecordID:     session.ID,
		AlreadyShown: session.CelebrationShown,
	}}

	// Streak milestones are evaluated against the owner's full session set.
	if all, err := s.sessions.List(ctx, models.SessionFilter{OwnerID: session.OwnerID}); err == nil {
		streak := analytics.Streak(all, s.clock(), s.params.StreakLookbackDays)
		events = append(events, celebration.Event{
			Type:         models.TriggerStreakReached,
			Value:        float64(streak),
			RecordID:     session.ID,
			AlreadyShown: session.CelebrationShown,
		})
	} else {
		log.Warn("failed to load sessions for streak evaluation: %v", err)
	}
	events = append(events, extra...)

	for _, event := range events {
		decision := celebration.Evaluate(event, triggers, s.params)
		if !decision.Fire {
			continue
		}
		if err := s.sessions.MarkCelebrationShown(ctx, session.ID); err != nil {
			// Someone else already claimed this record; stay quiet.
			log.Debug("celebration already claimed for session %d: %v", session.ID, err)
			return nil
		}
		log.Info("celebration fired: kind=%s, session_id=%d", decision.Kind, session.ID)
		return &decision
	}
	return nil
}
