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

type ChapterRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ChapterRepository
}

func (s *ChapterRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewChapterRepository(s.db)
}

func (s *ChapterRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ChapterRepositorySuite) setupProfile() int64 {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "arnav")
	s.Require().NoError(err)

	var profileID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "arnav").Scan(&profileID)
	s.Require().NoError(err)
	return profileID
}

func (s *ChapterRepositorySuite) TestUpsertInsertsThenReplaces() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	last := "2024-01-02"
	first := models.ChapterProgress{
		OwnerID: ownerID, Subject: models.SubjectPhysics, Chapter: "Optics",
		TotalQuestions: 20, TotalTimeMinutes: 30, AvgAccuracy: 70, MasteryLevel: 50,
		LastPracticed: &last, RevisionPriority: 1,
	}
	s.Require().NoError(s.repo.Upsert(ctx, first))

	// Same key again with fresh totals replaces the row instead of adding one.
	last2 := "2024-01-03"
	second := first
	second.TotalQuestions = 45
	second.AvgAccuracy = 78
	second.LastPracticed = &last2
	s.Require().NoError(s.repo.Upsert(ctx, second))

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chapter_progress WHERE owner_id = ?`, ownerID).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	got, err := s.repo.Get(ctx, ownerID, models.SubjectPhysics, "Optics")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(45, got.TotalQuestions)
	s.Assert().Equal(78.0, got.AvgAccuracy)
	s.Require().NotNil(got.LastPracticed)
	s.Assert().Equal("2024-01-03", *got.LastPracticed)
}

func (s *ChapterRepositorySuite) TestGetMissingReturnsNil() {
	ownerID := s.setupProfile()

	got, err := s.repo.Get(context.Background(), ownerID, models.SubjectPhysics, "Thermodynamics")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ChapterRepositorySuite) TestListByOwnerOrdersBySubjectAndChapter() {
	ctx := context.Background()
	ownerID := s.setupProfile()

	for _, c := range []models.ChapterProgress{
		{OwnerID: ownerID, Subject: models.SubjectPhysics, Chapter: "Waves", TotalQuestions: 5},
		{OwnerID: ownerID, Subject: models.SubjectChemistry, Chapter: "Equilibrium", TotalQuestions: 8},
		{OwnerID: ownerID, Subject: models.SubjectPhysics, Chapter: "Optics", TotalQuestions: 12},
	} {
		s.Require().NoError(s.repo.Upsert(ctx, c))
	}

	chapters, err := s.repo.ListByOwner(ctx, ownerID)
	s.Require().NoError(err)
	s.Require().Len(chapters, 3)
	s.Assert().Equal("Equilibrium", chapters[0].Chapter)
	s.Assert().Equal("Optics", chapters[1].Chapter)
	s.Assert().Equal("Waves", chapters[2].Chapter)
}

func TestChapterRepositorySuite(t *testing.T) {
	suite.Run(t, new(ChapterRepositorySuite))
}
