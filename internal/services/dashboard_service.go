package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
)

// ChapterView pairs a chapter aggregate with its status classification.
type ChapterView struct {
	models.ChapterProgress
	Status analytics.ChapterState `json:"status"`
}

// Dashboard is the assembled analytics snapshot the UI renders.
type Dashboard struct {
	Today          analytics.Totals          `json:"today"`
	ThisWeek       analytics.Totals          `json:"this_week"`
	ThisMonth      analytics.Totals          `json:"this_month"`
	Subjects       []analytics.SubjectTotals `json:"subjects"`
	Streak         int                       `json:"streak"`
	ReadinessScore int                       `json:"readiness_score"`
	Chapters       []ChapterView             `json:"chapters"`
	Targets        []TargetProgressView      `json:"targets"`
	Insight        string                    `json:"insight,omitempty"`
}

// DashboardService assembles the derived views for one owner. Snapshots are
// memoized in an LRU keyed by owner, day and the fingerprints of the
// session, task and target sets, so the cache self-invalidates whenever any
// underlying collection changes.
type DashboardService interface {
	Overview(ctx context.Context, ownerID int64) (*Dashboard, error)
}

type dashboardService struct {
	sessions repository.SessionRepository
	chapters repository.ChapterRepository
	targets  TargetService
	tasks    TaskService
	insights InsightService
	params   analytics.Params
	clock    func() time.Time
	cache    *lru.Cache[string, *Dashboard]
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	sessions repository.SessionRepository,
	chapters repository.ChapterRepository,
	targets TargetService,
	tasks TaskService,
	insights InsightService,
	params analytics.Params,
	clock func() time.Time,
) DashboardService {
	if clock == nil {
		clock = time.Now
	}
	cache, _ := lru.New[string, *Dashboard](64)
	return &dashboardService{
		sessions: sessions,
		chapters: chapters,
		targets:  targets,
		tasks:    tasks,
		insights: insights,
		params:   params,
		clock:    clock,
		cache:    cache,
	}
}

func (s *dashboardService) Overview(ctx context.Context, ownerID int64) (*Dashboard, error) {
	log := logger.FromContext(ctx)
	asOf := s.clock()

	fingerprint := s.fingerprint(ctx, ownerID)

	key := fmt.Sprintf("%d:%s:%s", ownerID, asOf.Format(analytics.DayFormat), fingerprint)
	if fingerprint != "" {
		if cached, ok := s.cache.Get(key); ok {
			log.Debug("dashboard cache hit: owner_id=%d", ownerID)
			return cached, nil
		}
	}

	sessions, err := s.sessions.List(ctx, models.SessionFilter{OwnerID: ownerID})
	if err != nil {
		log.Error("failed to list sessions for dashboard: %v", err)
		return nil, errors.NewInternalError(err)
	}

	subjects := analytics.BySubject(sessions)
	analytics.SortByQuestionsDesc(subjects)

	d := &Dashboard{
		Today:     analytics.WindowTotals(sessions, analytics.Today, asOf),
		ThisWeek:  analytics.WindowTotals(sessions, analytics.ThisWeek, asOf),
		ThisMonth: analytics.WindowTotals(sessions, analytics.ThisMonth, asOf),
		Subjects:  subjects,
		Streak:    analytics.Streak(sessions, asOf, s.params.StreakLookbackDays),
	}

	rates, err := s.tasks.WeeklyCompletionRates(ctx, ownerID)
	if err != nil {
		log.Error("failed to compute completion rates: %v", err)
		return nil, err
	}
	d.ReadinessScore = analytics.ReadinessScore(rates, s.params.ReadinessWeights)

	chapters, err := s.chapters.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list chapters for dashboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	for _, c := range chapters {
		d.Chapters = append(d.Chapters, ChapterView{
			ChapterProgress: c,
			Status:          analytics.ChapterStatus(c, asOf),
		})
	}

	views, err := s.targets.ListWithProgress(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	d.Targets = views

	// Best effort: a missing insight only leaves the panel empty.
	if s.insights != nil {
		d.Insight = s.insights.Latest(ownerID)
	}

	if fingerprint != "" {
		s.cache.Add(key, d)
	}
	return d, nil
}

// fingerprint combines the session, task and target set fingerprints. Every
// collection feeding the snapshot is covered, so completing a task or adding
// a target invalidates the cached dashboard just like a session write. An
// empty string means a fingerprint read failed and caching is skipped.
func (s *dashboardService) fingerprint(ctx context.Context, ownerID int64) string {
	log := logger.FromContext(ctx)

	sessFP, err := s.sessions.Fingerprint(ctx, ownerID)
	if err != nil {
		log.Warn("failed to fingerprint session set, skipping cache: %v", err)
		return ""
	}
	taskFP, err := s.tasks.Fingerprint(ctx, ownerID)
	if err != nil {
		log.Warn("failed to fingerprint task set, skipping cache: %v", err)
		return ""
	}
	targetFP, err := s.targets.Fingerprint(ctx, ownerID)
	if err != nil {
		log.Warn("failed to fingerprint target set, skipping cache: %v", err)
		return ""
	}
	return sessFP + "|" + taskFP + "|" + targetFP
}
