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
)

// TaskService handles scheduled-task business logic. Completing a task is a
// celebration event; the decision rides back with the updated task.
type TaskService interface {
	Create(ctx context.Context, task models.Task) (*models.Task, error)
	Update(ctx context.Context, task models.Task) (*models.Task, error)
	SetCompleted(ctx context.Context, ownerID, id int64, completed bool) (*models.Task, *celebration.Decision, error)
	Delete(ctx context.Context, ownerID, id int64) error
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	WeeklyCompletionRates(ctx context.Context, ownerID int64) (map[string]float64, error)
	Fingerprint(ctx context.Context, ownerID int64) (string, error)
}

type taskService struct {
	tasks    repository.TaskRepository
	triggers repository.TriggerRepository
	params   analytics.Params
	clock    func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks repository.TaskRepository, triggers repository.TriggerRepository, params analytics.Params, clock func() time.Time) TaskService {
	if clock == nil {
		clock = time.Now
	}
	return &taskService{tasks: tasks, triggers: triggers, params: params, clock: clock}
}

func validateTask(t models.Task) error {
	if t.Title == "" {
		return errors.NewValidationError("title", "must not be empty")
	}
	if !models.ValidSubject(t.Subject) {
		return errors.NewValidationError("subject", "unknown subject")
	}
	if _, err := time.Parse(analytics.DayFormat, t.ScheduledDate); err != nil {
		return errors.NewValidationError("scheduled_date", "must be a calendar day in YYYY-MM-DD form")
	}
	if t.Priority != "" && !models.ValidPriority(t.Priority) {
		return errors.NewValidationError("priority", "must be low, medium or high")
	}
	if t.DurationMinutes < 0 {
		return errors.NewValidationError("duration_minutes", "must not be negative")
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating task: owner_id=%d, title=%s", task.OwnerID, task.Title)

	if err := validateTask(task); err != nil {
		return nil, err
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	id, err := s.tasks.Insert(ctx, task)
	if err != nil {
		log.Error("failed to insert task: %v", err)
		return nil, errors.NewInternalError(err)
	}
	created, err := s.tasks.Get(ctx, id)
	if err != nil || created == nil {
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *taskService) Update(ctx context.Context, task models.Task) (*models.Task, error) {
	existing, err := s.tasks.Get(ctx, task.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != task.OwnerID {
		return nil, errors.NewNotFoundError("task", task.ID)
	}

	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return s.tasks.Get(ctx, task.ID)
}

func (s *taskService) SetCompleted(ctx context.Context, ownerID, id int64, completed bool) (*models.Task, *celebration.Decision, error) {
	log := logger.FromContext(ctx)

	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, nil, errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return nil, nil, errors.NewNotFoundError("task", id)
	}

	justCompleted := completed && !existing.Completed

	existing.Completed = completed
	if err := s.tasks.Update(ctx, *existing); err != nil {
		log.Error("failed to update task completion: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	updated, err := s.tasks.Get(ctx, id)
	if err != nil || updated == nil {
		return nil, nil, errors.NewInternalError(err)
	}

	var decision *celebration.Decision
	if justCompleted {
		decision = s.evaluateCelebration(ctx, *updated)
	}
	return updated, decision, nil
}

// evaluateCelebration runs the trigger rules for a task that just flipped to
// completed. The event value is the number of tasks done on that scheduled
// day, so a trigger like "complete 3 tasks" works. Any failure only
// suppresses the celebration, never the write.
func (s *taskService) evaluateCelebration(ctx context.Context, task models.Task) *celebration.Decision {
	log := logger.FromContext(ctx)

	triggers, err := s.triggers.ListByOwner(ctx, task.OwnerID)
	if err != nil {
		log.Warn("failed to load celebration triggers: %v", err)
		triggers = nil
	}

	done := true
	completedToday, err := s.tasks.List(ctx, models.TaskFilter{
		OwnerID:   task.OwnerID,
		DateFrom:  task.ScheduledDate,
		DateTo:    task.ScheduledDate,
		Completed: &done,
	})
	if err != nil {
		log.Warn("failed to count completed tasks: %v", err)
		return nil
	}

	decision := celebration.Evaluate(celebration.Event{
		Type:         models.TriggerTaskCompleted,
		Value:        float64(len(completedToday)),
		RecordID:     task.ID,
		AlreadyShown: task.CelebrationShown,
	}, triggers, s.params)
	if !decision.Fire {
		return nil
	}
	if err := s.tasks.MarkCelebrationShown(ctx, task.ID); err != nil {
		// Someone else already claimed this record; stay quiet.
		log.Debug("celebration already claimed for task %d: %v", task.ID, err)
		return nil
	}
	log.Info("celebration fired: kind=%s, task_id=%d", decision.Kind, task.ID)
	return &decision
}

func (s *taskService) Delete(ctx context.Context, ownerID, id int64) error {
	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil || existing.OwnerID != ownerID {
		return errors.NewNotFoundError("task", id)
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *taskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return tasks, nil
}

// WeeklyCompletionRates returns, per subject, the percentage of this week's
// tasks that are done. Subjects with no tasks this week are absent from the
// map; the readiness score treats them as zero.
func (s *taskService) WeeklyCompletionRates(ctx context.Context, ownerID int64) (map[string]float64, error) {
	days := analytics.WindowDays(analytics.ThisWeek, s.clock())

	tasks, err := s.tasks.List(ctx, models.TaskFilter{
		OwnerID:  ownerID,
		DateFrom: days[0],
		DateTo:   days[len(days)-1],
	})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	total := map[string]int{}
	done := map[string]int{}
	for _, t := range tasks {
		total[t.Subject]++
		if t.Completed {
			done[t.Subject]++
		}
	}

	rates := make(map[string]float64, len(total))
	for subject, n := range total {
		rates[subject] = analytics.CompletionRate(done[subject], n)
	}
	return rates, nil
}

func (s *taskService) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	return s.tasks.Fingerprint(ctx, ownerID)
}
