package services

import (
	"context"
	"sync"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/insight"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

// InsightService produces the AI coaching commentary. Refresh is expected to
// run on the worker pool; Latest is a cheap in-memory read the dashboard can
// always call.
type InsightService interface {
	Refresh(ctx context.Context, ownerID int64) error
	Latest(ownerID int64) string
}

type insightService struct {
	client   *insight.Client
	sessions repository.SessionRepository
	tasks    repository.TaskRepository
	params   analytics.Params
	clock    func() time.Time

	mu     sync.RWMutex
	latest map[int64]string
}

// NewInsightService creates a new InsightService
func NewInsightService(client *insight.Client, sessions repository.SessionRepository, tasks repository.TaskRepository, params analytics.Params, clock func() time.Time) InsightService {
	if clock == nil {
		clock = time.Now
	}
	return &insightService{
		client:   client,
		sessions: sessions,
		tasks:    tasks,
		params:   params,
		clock:    clock,
		latest:   make(map[int64]string),
	}
}

func (s *insightService) Refresh(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	if !s.client.Enabled() {
		log.Debug("insight service not configured, skipping refresh")
		return nil
	}

	sessions, err := s.sessions.List(ctx, models.SessionFilter{OwnerID: ownerID})
	if err != nil {
		return errors.NewInternalError(err)
	}
	titles, err := s.tasks.RecentTitles(ctx, ownerID, 10)
	if err != nil {
		return errors.NewInternalError(err)
	}

	asOf := s.clock()
	payload := insight.Payload{
		Weekly:           analytics.WindowTotals(sessions, analytics.ThisWeek, asOf),
		Monthly:          analytics.WindowTotals(sessions, analytics.ThisMonth, asOf),
		Subjects:         analytics.BySubject(sessions),
		Streak:           analytics.Streak(sessions, asOf, s.params.StreakLookbackDays),
		RecentTaskTitles: titles,
	}

	text, err := s.client.Generate(ctx, payload)
	if err != nil {
		// Recovered locally: the dashboard keeps whatever insight it had.
		log.Warn("insight generation failed for owner %d: %v", ownerID, err)
		return errors.NewExternalServiceError("insight service", err)
	}

	s.mu.Lock()
	s.latest[ownerID] = text
	s.mu.Unlock()
	log.Info("insight refreshed for owner %d", ownerID)
	return nil
}

func (s *insightService) Latest(ownerID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[ownerID]
}
