package repository

import (
	"context"
	"time"

	"github.com/mirela/brainplay/internal/models"
)

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Create(ctx context.Context, profile models.Profile) error
	Get(ctx context.Context, id string) (*models.Profile, error)
	GetByAccessCode(ctx context.Context, code string) (*models.Profile, error)
	Update(ctx context.Context, id string, name, avatarColor *string) (*models.Profile, error)
	TouchLastActive(ctx context.Context, id string, t time.Time) error
	AccessCodeExists(ctx context.Context, code string) (bool, error)
}

// ProgressRepository handles per-game progress data access
type ProgressRepository interface {
	Upsert(ctx context.Context, update models.ProgressUpdate) (*models.GameProgress, error)
	Get(ctx context.Context, profileID, gameID string) (*models.GameProgress, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.GameProgress, error)
	TopScores(ctx context.Context, gameID string, limit int) ([]models.LeaderboardEntry, error)
}

// AchievementRepository handles achievement data access. Upsert never
// downgrades a tier; a write with a lower or equal tier is a no-op.
type AchievementRepository interface {
	Upsert(ctx context.Context, profileID, medalID, tier string, earnedAt time.Time) error
	ListByProfile(ctx context.Context, profileID string) ([]models.Achievement, error)
}

// DailyChallengeRepository handles daily challenge completion rows.
// Upsert keeps the higher score when the date is already recorded.
type DailyChallengeRepository interface {
	Upsert(ctx context.Context, profileID, date string, score int) error
	ListByProfile(ctx context.Context, profileID string) ([]models.DailyChallengeCompletion, error)
	ListDates(ctx context.Context, profileID string) ([]string, error)
}

// PreferenceRepository handles preference data access (last write wins)
type PreferenceRepository interface {
	Set(ctx context.Context, profileID, key, value string) error
	ListByProfile(ctx context.Context, profileID string) ([]models.Preference, error)
}

// SyncRepository folds a client-local snapshot into the store as a single
// all-or-nothing transaction.
type SyncRepository interface {
	ImportSnapshot(ctx context.Context, profileID string, snapshot models.Snapshot) error
}
