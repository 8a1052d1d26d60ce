package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/mirela/brainplay/internal/models"
)

// MockSyncRepository is a mock implementation of repository.SyncRepository
type MockSyncRepository struct {
	mock.Mock
}

func (m *MockSyncRepository) ImportSnapshot(ctx context.Context, profileID string, snapshot models.Snapshot) error {
	args := m.Called(ctx, profileID, snapshot)
	return args.Error(0)
}
