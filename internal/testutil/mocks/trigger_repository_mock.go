package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/arnav/studyflow/internal/models"
)

// MockTriggerRepository is a mock implementation of repository.TriggerRepository
type MockTriggerRepository struct {
	mock.Mock
}

func (m *MockTriggerRepository) Get(ctx context.Context, id int64) (*models.CelebrationTrigger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CelebrationTrigger), args.Error(1)
}

func (m *MockTriggerRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.CelebrationTrigger, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CelebrationTrigger), args.Error(1)
}

func (m *MockTriggerRepository) Insert(ctx context.Context, trigger models.CelebrationTrigger) (int64, error) {
	args := m.Called(ctx, trigger)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTriggerRepository) Update(ctx context.Context, trigger models.CelebrationTrigger) error {
	args := m.Called(ctx, trigger)
	return args.Error(0)
}

func (m *MockTriggerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
