package services

import (
	"context"
	"time"

	"github.com/mirela/brainplay/internal/achievement"
	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
	"github.com/mirela/brainplay/internal/streak"
)

// ProgressService handles game results, achievements, daily challenge
// completions and streak math for a profile.
type ProgressService interface {
	SaveProgress(ctx context.Context, update models.ProgressUpdate) (*models.GameProgress, error)
	SaveAchievement(ctx context.Context, profileID, medalID, tier string) error
	EvaluateAchievements(ctx context.Context, profileID string, stats models.GameStats) ([]achievement.Upgrade, error)
	SaveDailyChallenge(ctx context.Context, profileID, date string, score int) error
	Streak(ctx context.Context, profileID string, today time.Time) (*models.StreakInfo, error)
	SetPreference(ctx context.Context, profileID, key, value string) error
	Leaderboard(ctx context.Context, gameID string, limit int) ([]models.LeaderboardEntry, error)
}

type progressService struct {
	profileRepo     repository.ProfileRepository
	progressRepo    repository.ProgressRepository
	achievementRepo repository.AchievementRepository
	dailyRepo       repository.DailyChallengeRepository
	preferenceRepo  repository.PreferenceRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	profileRepo repository.ProfileRepository,
	progressRepo repository.ProgressRepository,
	achievementRepo repository.AchievementRepository,
	dailyRepo repository.DailyChallengeRepository,
	preferenceRepo repository.PreferenceRepository,
) ProgressService {
	return &progressService{
		profileRepo:     profileRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
		dailyRepo:       dailyRepo,
		preferenceRepo:  preferenceRepo,
	}
}

// requireProfile turns writes against unknown profiles into 404s instead
// of letting them surface as foreign key failures.
func (s *progressService) requireProfile(ctx context.Context, profileID string) error {
	profile, err := s.profileRepo.Get(ctx, profileID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if profile == nil {
		return errors.NewNotFoundError("profile", profileID)
	}
	return nil
}

func (s *progressService) SaveProgress(ctx context.Context, update models.ProgressUpdate) (*models.GameProgress, error) {
	log := logger.FromContext(ctx)

	if update.GameID == "" {
		return nil, errors.NewValidationError("gameId", "cannot be empty")
	}
	if update.Score < 0 {
		return nil, errors.NewValidationError("score", "cannot be negative")
	}
	if update.BestStreak != nil && *update.BestStreak < 0 {
		return nil, errors.NewValidationError("bestStreak", "cannot be negative")
	}
	if err := s.requireProfile(ctx, update.ProfileID); err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.Upsert(ctx, update)
	if err != nil {
		log.Error("failed to save progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("progress saved: profile=%s, game=%s, highScore=%d", update.ProfileID, update.GameID, progress.HighScore)
	return progress, nil
}

func (s *progressService) SaveAchievement(ctx context.Context, profileID, medalID, tier string) error {
	log := logger.FromContext(ctx)

	if medalID == "" {
		return errors.NewValidationError("medalId", "cannot be empty")
	}
	if !models.ValidTier(tier) {
		return errors.NewValidationError("tier", "must be bronze, silver or gold")
	}
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}

	if err := s.achievementRepo.Upsert(ctx, profileID, medalID, tier, time.Now().UTC()); err != nil {
		log.Error("failed to save achievement: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// EvaluateAchievements runs the medal catalog against a finished game and
// persists any tier upgrades. The returned slice holds only what changed,
// so repeating the call with the same stats yields nothing.
func (s *progressService) EvaluateAchievements(ctx context.Context, profileID string, stats models.GameStats) ([]achievement.Upgrade, error) {
	log := logger.FromContext(ctx)

	if stats.GameID == "" {
		return nil, errors.NewValidationError("gameId", "cannot be empty")
	}
	if err := s.requireProfile(ctx, profileID); err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	earned, err := s.achievementRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	total := 0
	byGame := make(map[string]int, len(progress))
	for _, p := range progress {
		total += p.GamesPlayed
		byGame[p.GameID] = p.GamesPlayed
	}
	earnedTiers := make(map[string]string, len(earned))
	for _, a := range earned {
		earnedTiers[a.MedalID] = a.Tier
	}

	upgrades := achievement.Evaluate(achievement.Context{
		Stats:             stats,
		TotalGamesPlayed:  total,
		GamesPlayedByGame: byGame,
	}, earnedTiers)

	now := time.Now().UTC()
	for _, u := range upgrades {
		if err := s.achievementRepo.Upsert(ctx, profileID, u.MedalID, u.Tier, now); err != nil {
			log.Error("failed to persist achievement upgrade: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	if len(upgrades) > 0 {
		log.Info("achievements upgraded: profile=%s, count=%d", profileID, len(upgrades))
	}
	if upgrades == nil {
		upgrades = []achievement.Upgrade{}
	}
	return upgrades, nil
}

func (s *progressService) SaveDailyChallenge(ctx context.Context, profileID, date string, score int) error {
	log := logger.FromContext(ctx)

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if score < 0 {
		return errors.NewValidationError("score", "cannot be negative")
	}
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}

	if err := s.dailyRepo.Upsert(ctx, profileID, date, score); err != nil {
		log.Error("failed to save daily challenge: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *progressService) Streak(ctx context.Context, profileID string, today time.Time) (*models.StreakInfo, error) {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return nil, err
	}

	dates, err := s.dailyRepo.ListDates(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	return &models.StreakInfo{
		Current: streak.Current(dates, today),
		Longest: streak.Longest(dates),
	}, nil
}

func (s *progressService) SetPreference(ctx context.Context, profileID, key, value string) error {
	if key == "" {
		return errors.NewValidationError("key", "cannot be empty")
	}
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}

	if err := s.preferenceRepo.Set(ctx, profileID, key, value); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

func (s *progressService) Leaderboard(ctx context.Context, gameID string, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := s.progressRepo.TopScores(ctx, gameID, limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}
