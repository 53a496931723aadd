package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/arnav/studyflow/internal/models"
)

// MockTargetRepository is a mock implementation of repository.TargetRepository
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) Get(ctx context.Context, id int64) (*models.PracticeTarget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PracticeTarget), args.Error(1)
}

func (m *MockTargetRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.PracticeTarget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PracticeTarget), args.Error(1)
}

func (m *MockTargetRepository) ListForSubject(ctx context.Context, ownerID int64, subject string) ([]models.PracticeTarget, error) {
	args := m.Called(ctx, ownerID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PracticeTarget), args.Error(1)
}

func (m *MockTargetRepository) Insert(ctx context.Context, target models.PracticeTarget) (int64, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTargetRepository) Update(ctx context.Context, target models.PracticeTarget) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockTargetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTargetRepository) Fingerprint(ctx context.Context, ownerID int64) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}
