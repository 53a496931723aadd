package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/services"
	"github.com/arnav/studyflow/internal/testutil/mocks"
)

type dashboardFixture struct {
	sessions *mocks.MockSessionRepository
	chapters *mocks.MockChapterRepository
	targets  *mocks.MockTargetRepository
	tasks    *mocks.MockTaskRepository
	svc      services.DashboardService
}

func newDashboardFixture(day string) *dashboardFixture {
	f := &dashboardFixture{
		sessions: new(mocks.MockSessionRepository),
		chapters: new(mocks.MockChapterRepository),
		targets:  new(mocks.MockTargetRepository),
		tasks:    new(mocks.MockTaskRepository),
	}
	params := analytics.DefaultParams()
	clock := fixedClock(day)
	targetSvc := services.NewTargetService(f.targets, f.sessions, params, clock)
	taskSvc := services.NewTaskService(f.tasks, new(mocks.MockTriggerRepository), params, clock)
	f.svc = services.NewDashboardService(f.sessions, f.chapters, targetSvc, taskSvc, nil, params, clock)
	return f
}

// stubStableFingerprints pins the task and target fingerprints so only the
// session set appears to change.
func (f *dashboardFixture) stubStableFingerprints() {
	f.tasks.On("Fingerprint", mock.Anything, int64(7)).Return("3:50", nil)
	f.targets.On("Fingerprint", mock.Anything, int64(7)).Return("0:", nil)
}

func (f *dashboardFixture) stubData() {
	sessions := []models.PracticeSession{
		{OwnerID: 7, Date: "2024-01-03", Subject: models.SubjectPhysics, QuestionsSolved: 30, TimeSpentMinutes: 60},
		{OwnerID: 7, Date: "2024-01-02", Subject: models.SubjectChemistry, QuestionsSolved: 20, TimeSpentMinutes: 30},
	}
	f.sessions.On("List", mock.Anything, models.SessionFilter{OwnerID: 7}).Return(sessions, nil)

	f.tasks.On("List", mock.Anything, models.TaskFilter{
		OwnerID: 7, DateFrom: "2024-01-01", DateTo: "2024-01-07",
	}).Return([]models.Task{
		{OwnerID: 7, Subject: models.SubjectPhysics, ScheduledDate: "2024-01-02", Completed: true},
		{OwnerID: 7, Subject: models.SubjectPhysics, ScheduledDate: "2024-01-03", Completed: false},
		{OwnerID: 7, Subject: models.SubjectChemistry, ScheduledDate: "2024-01-03", Completed: true},
	}, nil)

	last := "2024-01-03"
	f.chapters.On("ListByOwner", mock.Anything, int64(7)).Return([]models.ChapterProgress{
		{OwnerID: 7, Subject: models.SubjectPhysics, Chapter: "Optics",
			TotalQuestions: 60, AvgAccuracy: 85, LastPracticed: &last},
	}, nil)

	f.targets.On("ListByOwner", mock.Anything, int64(7)).Return([]models.PracticeTarget{}, nil)
}

func TestDashboardService_AssemblesOverview(t *testing.T) {
	f := newDashboardFixture("2024-01-03")
	f.sessions.On("Fingerprint", mock.Anything, int64(7)).Return("2:100", nil)
	f.stubStableFingerprints()
	f.stubData()

	d, err := f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, analytics.Totals{Questions: 30, TimeMinutes: 60, Sessions: 1}, d.Today)
	assert.Equal(t, analytics.Totals{Questions: 50, TimeMinutes: 90, Sessions: 2}, d.ThisWeek)
	assert.Equal(t, 2, d.Streak)

	// Physics 1/2 done, Chemistry 1/1, Mathematics no tasks:
	// 50*0.35 + 100*0.3 + 0*0.35 = 47.5, rounded.
	assert.Equal(t, 48, d.ReadinessScore)

	require.Len(t, d.Chapters, 1)
	assert.Equal(t, analytics.Strong, d.Chapters[0].Status)

	require.Len(t, d.Subjects, 2)
	assert.Equal(t, models.SubjectPhysics, d.Subjects[0].Name)
}

func TestDashboardService_CachesUntilFingerprintChanges(t *testing.T) {
	f := newDashboardFixture("2024-01-03")
	f.sessions.On("Fingerprint", mock.Anything, int64(7)).Return("2:100", nil).Twice()
	f.sessions.On("Fingerprint", mock.Anything, int64(7)).Return("3:200", nil).Once()
	f.stubStableFingerprints()
	f.stubData()

	_, err := f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)
	_, err = f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)

	// Same fingerprint, so the snapshot is served from the cache.
	f.sessions.AssertNumberOfCalls(t, "List", 1)

	// A write changed the session set; the next read recomputes.
	_, err = f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)
	f.sessions.AssertNumberOfCalls(t, "List", 2)
}

func TestDashboardService_TaskCompletionInvalidatesCache(t *testing.T) {
	f := newDashboardFixture("2024-01-03")
	f.sessions.On("Fingerprint", mock.Anything, int64(7)).Return("0:", nil)
	f.targets.On("Fingerprint", mock.Anything, int64(7)).Return("0:", nil)
	f.tasks.On("Fingerprint", mock.Anything, int64(7)).Return("1:100", nil).Once()
	f.tasks.On("Fingerprint", mock.Anything, int64(7)).Return("1:200", nil).Once()

	f.sessions.On("List", mock.Anything, models.SessionFilter{OwnerID: 7}).
		Return([]models.PracticeSession{}, nil)
	f.chapters.On("ListByOwner", mock.Anything, int64(7)).Return([]models.ChapterProgress{}, nil)
	f.targets.On("ListByOwner", mock.Anything, int64(7)).Return([]models.PracticeTarget{}, nil)

	weekFilter := models.TaskFilter{OwnerID: 7, DateFrom: "2024-01-01", DateTo: "2024-01-07"}
	task := models.Task{OwnerID: 7, Subject: models.SubjectPhysics, ScheduledDate: "2024-01-03"}
	f.tasks.On("List", mock.Anything, weekFilter).Return([]models.Task{task}, nil).Once()
	done := task
	done.Completed = true
	f.tasks.On("List", mock.Anything, weekFilter).Return([]models.Task{done}, nil).Once()

	d1, err := f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, d1.ReadinessScore)

	// Completing the week's only Physics task moves the task fingerprint, so
	// the next read recomputes instead of serving the cached snapshot.
	d2, err := f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 35, d2.ReadinessScore)
	f.tasks.AssertNumberOfCalls(t, "List", 2)
}

func TestDashboardService_FingerprintFailureSkipsCache(t *testing.T) {
	f := newDashboardFixture("2024-01-03")
	f.sessions.On("Fingerprint", mock.Anything, int64(7)).Return("", assert.AnError)
	f.stubData()

	_, err := f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)
	_, err = f.svc.Overview(context.Background(), 7)
	require.NoError(t, err)

	// Without a fingerprint nothing is cached, every read recomputes.
	f.sessions.AssertNumberOfCalls(t, "List", 2)
}
