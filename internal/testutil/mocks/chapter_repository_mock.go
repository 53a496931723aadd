package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/arnav/studyflow/internal/models"
)

// MockChapterRepository is a mock implementation of repository.ChapterRepository
type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) Get(ctx context.Context, ownerID int64, subject, chapter string) (*models.ChapterProgress, error) {
	args := m.Called(ctx, ownerID, subject, chapter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChapterProgress), args.Error(1)
}

func (m *MockChapterRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.ChapterProgress, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChapterProgress), args.Error(1)
}

func (m *MockChapterRepository) Upsert(ctx context.Context, progress models.ChapterProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockChapterRepository) Delete(ctx context.Context, ownerID int64, subject, chapter string) error {
	args := m.Called(ctx, ownerID, subject, chapter)
	return args.Error(0)
}
