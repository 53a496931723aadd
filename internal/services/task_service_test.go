package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/celebration"
	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/services"
	"github.com/arnav/studyflow/internal/testutil/mocks"
)

type taskFixture struct {
	tasks    *mocks.MockTaskRepository
	triggers *mocks.MockTriggerRepository
	svc      services.TaskService
}

func newTaskFixture(day string) *taskFixture {
	f := &taskFixture{
		tasks:    new(mocks.MockTaskRepository),
		triggers: new(mocks.MockTriggerRepository),
	}
	f.svc = services.NewTaskService(f.tasks, f.triggers, analytics.DefaultParams(), fixedClock(day))
	return f
}

func completedOn(day string) any {
	return mock.MatchedBy(func(filter models.TaskFilter) bool {
		return filter.DateFrom == day && filter.DateTo == day &&
			filter.Completed != nil && *filter.Completed
	})
}

func TestTaskService_CompletionFiresCustomTrigger(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture("2024-01-03")

	task := models.Task{ID: 5, OwnerID: 7, Title: "Revise optics", Subject: models.SubjectPhysics, ScheduledDate: "2024-01-03"}
	done := task
	done.Completed = true

	f.tasks.On("Get", mock.Anything, int64(5)).Return(&task, nil).Once()
	f.tasks.On("Update", mock.Anything, mock.AnythingOfType("models.Task")).Return(nil)
	f.tasks.On("Get", mock.Anything, int64(5)).Return(&done, nil).Once()
	f.triggers.On("ListByOwner", mock.Anything, int64(7)).Return([]models.CelebrationTrigger{
		{ID: 31, OwnerID: 7, TriggerType: models.TriggerTaskCompleted, TriggerValue: 2, IsActive: true},
	}, nil)
	f.tasks.On("List", mock.Anything, completedOn("2024-01-03")).
		Return([]models.Task{done, {ID: 6, Completed: true}}, nil)
	f.tasks.On("MarkCelebrationShown", mock.Anything, int64(5)).Return(nil)

	got, decision, err := f.svc.SetCompleted(ctx, 7, 5, true)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	// Two tasks done on the scheduled day crosses the "complete 2" trigger.
	require.NotNil(t, decision)
	assert.Equal(t, celebration.KindCustom, decision.Kind)
	assert.Equal(t, int64(31), decision.TriggerID)
	f.tasks.AssertCalled(t, "MarkCelebrationShown", mock.Anything, int64(5))
}

func TestTaskService_CompletionWithoutTriggerStaysQuiet(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture("2024-01-03")

	task := models.Task{ID: 8, OwnerID: 7, Title: "NCERT problems", Subject: models.SubjectChemistry, ScheduledDate: "2024-01-03"}
	done := task
	done.Completed = true

	f.tasks.On("Get", mock.Anything, int64(8)).Return(&task, nil).Once()
	f.tasks.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.tasks.On("Get", mock.Anything, int64(8)).Return(&done, nil).Once()
	f.triggers.On("ListByOwner", mock.Anything, int64(7)).Return([]models.CelebrationTrigger{}, nil)
	f.tasks.On("List", mock.Anything, completedOn("2024-01-03")).
		Return([]models.Task{done}, nil)

	// Task completion has no default milestone; only a custom trigger fires.
	_, decision, err := f.svc.SetCompleted(ctx, 7, 8, true)
	require.NoError(t, err)
	assert.Nil(t, decision)
	f.tasks.AssertNotCalled(t, "MarkCelebrationShown", mock.Anything, mock.Anything)
}

func TestTaskService_CompletionNeverCelebratesTwice(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture("2024-01-03")

	task := models.Task{ID: 9, OwnerID: 7, Title: "PYQ set", Subject: models.SubjectMathematics, ScheduledDate: "2024-01-03"}
	done := task
	done.Completed = true
	done.CelebrationShown = true

	f.tasks.On("Get", mock.Anything, int64(9)).Return(&task, nil).Once()
	f.tasks.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.tasks.On("Get", mock.Anything, int64(9)).Return(&done, nil).Once()
	f.triggers.On("ListByOwner", mock.Anything, int64(7)).Return([]models.CelebrationTrigger{
		{ID: 32, OwnerID: 7, TriggerType: models.TriggerTaskCompleted, TriggerValue: 1, IsActive: true},
	}, nil)
	f.tasks.On("List", mock.Anything, completedOn("2024-01-03")).
		Return([]models.Task{done}, nil)

	_, decision, err := f.svc.SetCompleted(ctx, 7, 9, true)
	require.NoError(t, err)
	assert.Nil(t, decision)
	f.tasks.AssertNotCalled(t, "MarkCelebrationShown", mock.Anything, mock.Anything)
}

func TestTaskService_UncompletingIsNotAnEvent(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture("2024-01-03")

	done := models.Task{ID: 10, OwnerID: 7, Title: "Mock test", Subject: models.SubjectPhysics, ScheduledDate: "2024-01-03", Completed: true}
	undone := done
	undone.Completed = false

	f.tasks.On("Get", mock.Anything, int64(10)).Return(&done, nil).Once()
	f.tasks.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.tasks.On("Get", mock.Anything, int64(10)).Return(&undone, nil).Once()

	_, decision, err := f.svc.SetCompleted(ctx, 7, 10, false)
	require.NoError(t, err)
	assert.Nil(t, decision)
	f.triggers.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}
