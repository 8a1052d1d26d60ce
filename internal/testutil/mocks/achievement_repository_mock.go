package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/mirela/brainplay/internal/models"
)

// MockAchievementRepository is a mock implementation of repository.AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Upsert(ctx context.Context, profileID, medalID, tier string, earnedAt time.Time) error {
	args := m.Called(ctx, profileID, medalID, tier, earnedAt)
	return args.Error(0)
}

func (m *MockAchievementRepository) ListByProfile(ctx context.Context, profileID string) ([]models.Achievement, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}
