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

type SessionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.SessionRepository
}

func (s *SessionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSessionRepository(s.db)
}

func (s *SessionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionRepositorySuite) setupProfile() int64 {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "arnav")
	s.Require().NoError(err)

	var profileID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "arnav").Scan(&profileID)
	s.Require().NoError(err)
	return profileID
}

func (s *SessionRepositorySuite) newSession(ownerID int64, date, subject, chapter string, solved int) models.PracticeSession {
	return models.PracticeSession{
		OwnerID:          ownerID,
		Date:             date,
		Subject:          subject,
		Chapter:          chapter,
		Source:           models.SourceModule,
		QuestionsTarget:  solved,
		QuestionsSolved:  solved,
		TimeSpentMinutes: 30,
	}
}

func (s *SessionRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	difficulty := models.DifficultyHard
	accuracy := 72.5
	session := s.newSession(ownerID, "2024-01-03", models.SubjectPhysics, "Optics", 25)
	session.DifficultyLevel = &difficulty
	session.AccuracyPercentage = &accuracy
	session.Notes = "ray diagrams need work"

	id, err := s.repo.Insert(ctx, session)
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("2024-01-03", got.Date)
	s.Assert().Equal(models.SubjectPhysics, got.Subject)
	s.Assert().Equal("Optics", got.Chapter)
	s.Require().NotNil(got.DifficultyLevel)
	s.Assert().Equal(models.DifficultyHard, *got.DifficultyLevel)
	s.Require().NotNil(got.AccuracyPercentage)
	s.Assert().Equal(72.5, *got.AccuracyPercentage)
	s.Assert().False(got.CelebrationShown)
}

func (s *SessionRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), 12345)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *SessionRepositorySuite) TestListFilters() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	_, err := s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-01", models.SubjectPhysics, "Optics", 10))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-02", models.SubjectPhysics, "Waves", 15))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-03", models.SubjectChemistry, "Equilibrium", 20))
	s.Require().NoError(err)

	all, err := s.repo.List(ctx, models.SessionFilter{OwnerID: ownerID})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)
	// Default order is newest first.
	s.Assert().Equal("2024-01-03", all[0].Date)

	physics, err := s.repo.List(ctx, models.SessionFilter{OwnerID: ownerID, Subject: models.SubjectPhysics})
	s.Require().NoError(err)
	s.Assert().Len(physics, 2)

	ranged, err := s.repo.List(ctx, models.SessionFilter{OwnerID: ownerID, DateFrom: "2024-01-02", DateTo: "2024-01-03"})
	s.Require().NoError(err)
	s.Assert().Len(ranged, 2)

	chapter, err := s.repo.ListForChapter(ctx, ownerID, models.SubjectPhysics, "Waves")
	s.Require().NoError(err)
	s.Require().Len(chapter, 1)
	s.Assert().Equal(15, chapter[0].QuestionsSolved)
}

func (s *SessionRepositorySuite) TestMarkCelebrationShownIsGuarded() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	id, err := s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-03", models.SubjectPhysics, "Optics", 60))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.MarkCelebrationShown(ctx, id))

	// Second claim on the same record fails.
	err = s.repo.MarkCelebrationShown(ctx, id)
	s.Assert().ErrorIs(err, sql.ErrNoRows)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().True(got.CelebrationShown)
}

func (s *SessionRepositorySuite) TestFingerprintChangesOnWrite() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	before, err := s.repo.Fingerprint(ctx, ownerID)
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-03", models.SubjectPhysics, "Optics", 10))
	s.Require().NoError(err)

	after, err := s.repo.Fingerprint(ctx, ownerID)
	s.Require().NoError(err)
	s.Assert().NotEqual(before, after)
}

func (s *SessionRepositorySuite) TestDeleteCascadesFromProfile() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	id, err := s.repo.Insert(ctx, s.newSession(ownerID, "2024-01-03", models.SubjectPhysics, "Optics", 10))
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, ownerID)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositorySuite))
}
