package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/mirela/brainplay/internal/models"
)

// MockPreferenceRepository is a mock implementation of repository.PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Set(ctx context.Context, profileID, key, value string) error {
	args := m.Called(ctx, profileID, key, value)
	return args.Error(0)
}

func (m *MockPreferenceRepository) ListByProfile(ctx context.Context, profileID string) ([]models.Preference, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Preference), args.Error(1)
}
