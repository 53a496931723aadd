package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/arnav/studyflow/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id int64) (*models.PracticeSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PracticeSession), args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.PracticeSession, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PracticeSession), args.Error(1)
}

func (m *MockSessionRepository) ListForChapter(ctx context.Context, ownerID int64, subject, chapter string) ([]models.PracticeSession, error) {
	args := m.Called(ctx, ownerID, subject, chapter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PracticeSession), args.Error(1)
}

func (m *MockSessionRepository) ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeSession, error) {
	args := m.Called(ctx, ownerID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PracticeSession), args.Error(1)
}

func (m *MockSessionRepository) Insert(ctx context.Context, session models.PracticeSession) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session models.PracticeSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) MarkCelebrationShown(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}
