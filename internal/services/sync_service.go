package services

import (
	"context"
	"time"

	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

// SyncService folds a client-local snapshot into a server profile. The
// import is all or nothing; a failed sync leaves the profile untouched
// and the client keeps its local copy.
type SyncService interface {
	ImportSnapshot(ctx context.Context, profileID string, snapshot models.Snapshot) error
}

type syncService struct {
	profileRepo repository.ProfileRepository
	syncRepo    repository.SyncRepository
}

// NewSyncService creates a new SyncService
func NewSyncService(profileRepo repository.ProfileRepository, syncRepo repository.SyncRepository) SyncService {
	return &syncService{profileRepo: profileRepo, syncRepo: syncRepo}
}

func (s *syncService) ImportSnapshot(ctx context.Context, profileID string, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepo.Get(ctx, profileID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if profile == nil {
		return errors.NewNotFoundError("profile", profileID)
	}

	clean := sanitizeSnapshot(snapshot)
	log.Debug("importing snapshot: profile=%s, scores=%d, achievements=%d, dailyDates=%d",
		profileID, len(clean.HighScores), len(clean.Achievements), len(clean.DailyChallenge.CompletedDates))

	if err := s.syncRepo.ImportSnapshot(ctx, profileID, clean); err != nil {
		log.Error("snapshot import failed: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("snapshot imported: profile=%s", profileID)
	return nil
}

// sanitizeSnapshot drops entries the store must never see: empty game
// ids, negative counts and scores, unknown tiers, malformed dates and
// empty preference keys. Bad entries are skipped, not rejected, because
// a half-corrupt local save should still sync what it can.
func sanitizeSnapshot(snapshot models.Snapshot) models.Snapshot {
	clean := models.Snapshot{
		PlayerName: snapshot.PlayerName,
		HighScores: make(map[string]int, len(snapshot.HighScores)),
		PlayProfile: models.PlayProfile{
			GamesPlayed: make(map[string]int, len(snapshot.PlayProfile.GamesPlayed)),
		},
		Achievements: make(map[string]string, len(snapshot.Achievements)),
		DailyChallenge: models.DailyRecord{
			CompletedDates: make([]string, 0, len(snapshot.DailyChallenge.CompletedDates)),
			Scores:         make(map[string]int, len(snapshot.DailyChallenge.Scores)),
		},
		Preferences: make(map[string]string, len(snapshot.Preferences)),
	}

	for gameID, score := range snapshot.HighScores {
		if gameID == "" || score < 0 {
			continue
		}
		clean.HighScores[gameID] = score
	}

	if snapshot.PlayProfile.TotalGamesPlayed > 0 {
		clean.PlayProfile.TotalGamesPlayed = snapshot.PlayProfile.TotalGamesPlayed
	}
	for gameID, played := range snapshot.PlayProfile.GamesPlayed {
		if gameID == "" || played <= 0 {
			continue
		}
		clean.PlayProfile.GamesPlayed[gameID] = played
	}

	for medalID, tier := range snapshot.Achievements {
		if medalID == "" || !models.ValidTier(tier) {
			continue
		}
		clean.Achievements[medalID] = tier
	}

	for _, date := range snapshot.DailyChallenge.CompletedDates {
		if !validDate(date) {
			continue
		}
		clean.DailyChallenge.CompletedDates = append(clean.DailyChallenge.CompletedDates, date)
	}
	for date, score := range snapshot.DailyChallenge.Scores {
		if !validDate(date) || score < 0 {
			continue
		}
		clean.DailyChallenge.Scores[date] = score
	}

	for key, value := range snapshot.Preferences {
		if key == "" {
			continue
		}
		clean.Preferences[key] = value
	}

	return clean
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
