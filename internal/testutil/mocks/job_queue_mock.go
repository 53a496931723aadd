package mocks

import "github.com/stretchr/testify/mock"

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueInsightRefresh(ownerID int64) error {
	args := m.Called(ownerID)
	return args.Error(0)
}
