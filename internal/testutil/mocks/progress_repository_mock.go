package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/mirela/brainplay/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Upsert(ctx context.Context, update models.ProgressUpdate) (*models.GameProgress, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameProgress), args.Error(1)
}

func (m *MockProgressRepository) Get(ctx context.Context, profileID, gameID string) (*models.GameProgress, error) {
	args := m.Called(ctx, profileID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameProgress), args.Error(1)
}

func (m *MockProgressRepository) ListByProfile(ctx context.Context, profileID string) ([]models.GameProgress, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameProgress), args.Error(1)
}

func (m *MockProgressRepository) TopScores(ctx context.Context, gameID string, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, gameID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}
