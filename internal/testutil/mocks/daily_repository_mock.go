package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/mirela/brainplay/internal/models"
)

// MockDailyChallengeRepository is a mock implementation of repository.DailyChallengeRepository
type MockDailyChallengeRepository struct {
	mock.Mock
}

func (m *MockDailyChallengeRepository) Upsert(ctx context.Context, profileID, date string, score int) error {
	args := m.Called(ctx, profileID, date, score)
	return args.Error(0)
}

func (m *MockDailyChallengeRepository) ListByProfile(ctx context.Context, profileID string) ([]models.DailyChallengeCompletion, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyChallengeCompletion), args.Error(1)
}

func (m *MockDailyChallengeRepository) ListDates(ctx context.Context, profileID string) ([]string, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
