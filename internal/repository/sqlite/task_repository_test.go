package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arnav/studyflow/internal/models"
	"github.com/arnav/studyflow/internal/repository"
	"github.com/arnav/studyflow/internal/repository/sqlite"
	"github.com/arnav/studyflow/internal/testutil"
)

type TaskRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.TaskRepository
}

func (s *TaskRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewTaskRepository(s.db)
}

func (s *TaskRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *TaskRepositorySuite) setupProfile() int64 {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "arnav")
	s.Require().NoError(err)

	var profileID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "arnav").Scan(&profileID)
	s.Require().NoError(err)
	return profileID
}

func (s *TaskRepositorySuite) newTask(ownerID int64, title, date string) models.Task {
	return models.Task{
		OwnerID:       ownerID,
		Title:         title,
		Subject:       models.SubjectPhysics,
		ScheduledDate: date,
		Priority:      models.PriorityMedium,
	}
}

func (s *TaskRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	id, err := s.repo.Insert(ctx, s.newTask(ownerID, "Revise optics", "2024-01-03"))
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("Revise optics", got.Title)
	s.Assert().False(got.Completed)
	s.Assert().False(got.CelebrationShown)
}

func (s *TaskRepositorySuite) TestMarkCelebrationShownIsGuarded() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	id, err := s.repo.Insert(ctx, s.newTask(ownerID, "PYQ set", "2024-01-03"))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.MarkCelebrationShown(ctx, id))

	// The second claim loses; the caller stays quiet.
	err = s.repo.MarkCelebrationShown(ctx, id)
	s.Assert().ErrorIs(err, sql.ErrNoRows)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().True(got.CelebrationShown)
}

func (s *TaskRepositorySuite) TestFingerprintChangesOnWrite() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	before, err := s.repo.Fingerprint(ctx, ownerID)
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, s.newTask(ownerID, "Mock test", "2024-01-04"))
	s.Require().NoError(err)

	after, err := s.repo.Fingerprint(ctx, ownerID)
	s.Require().NoError(err)
	s.Assert().NotEqual(before, after)
}

func (s *TaskRepositorySuite) TestCompletedFilter() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	task := s.newTask(ownerID, "Done already", "2024-01-03")
	task.Completed = true
	_, err := s.repo.Insert(ctx, task)
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newTask(ownerID, "Still open", "2024-01-03"))
	s.Require().NoError(err)

	done := true
	tasks, err := s.repo.List(ctx, models.TaskFilter{OwnerID: ownerID, Completed: &done})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Assert().Equal("Done already", tasks[0].Title)
}

func TestTaskRepositorySuite(t *testing.T) {
	suite.Run(t, new(TaskRepositorySuite))
}
