package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/arnav/studyflow/internal/models"
)

// MockTagRepository is a mock implementation of repository.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Get(ctx context.Context, id int64) (*models.QuickTag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuickTag), args.Error(1)
}

func (m *MockTagRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.QuickTag, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuickTag), args.Error(1)
}

func (m *MockTagRepository) Insert(ctx context.Context, tag models.QuickTag) (int64, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagRepository) Update(ctx context.Context, tag models.QuickTag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
