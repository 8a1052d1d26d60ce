package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

type syncRepository struct {
	db *sql.DB
}

// NewSyncRepository creates a new SyncRepository implementation
func NewSyncRepository(db *sql.DB) repository.SyncRepository {
	return &syncRepository{db: db}
}

// ImportSnapshot folds a guest snapshot into the profile's rows inside a
// single transaction. If any step fails no step's effect is visible.
//
// The snapshot's per-game high score doubles as the initial total_score;
// the exact historical total is not recoverable from client-local data.
func (r *syncRepository) ImportSnapshot(ctx context.Context, profileID string, snap models.Snapshot) error {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")
	log.Debug("importing snapshot: profile_id=%s, games=%d, achievements=%d, daily=%d",
		profileID, len(snap.PlayProfile.GamesPlayed), len(snap.Achievements), len(snap.DailyChallenge.CompletedDates))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		progressStmt, err := tx.PrepareContext(ctx, `
INSERT INTO game_progress (profile_id, game_id, high_score, games_played, total_score)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(profile_id, game_id) DO UPDATE SET
    high_score = MAX(game_progress.high_score, excluded.high_score),
    games_played = game_progress.games_played + excluded.games_played,
    total_score = game_progress.total_score + excluded.total_score
`)
		if err != nil {
			log.Error("failed to prepare progress import: %v", err)
			return err
		}
		defer progressStmt.Close()

		for gameID, played := range snap.PlayProfile.GamesPlayed {
			highScore := snap.HighScores[gameID]
			if _, err := progressStmt.ExecContext(ctx, profileID, gameID, highScore, played, highScore); err != nil {
				log.Error("failed to import progress for game %s: %v", gameID, err)
				return err
			}
		}

		// Bare high scores without a play-count entry get a minimal row.
		for gameID, highScore := range snap.HighScores {
			if _, ok := snap.PlayProfile.GamesPlayed[gameID]; ok {
				continue
			}
			if _, err := progressStmt.ExecContext(ctx, profileID, gameID, highScore, 0, highScore); err != nil {
				log.Error("failed to import bare high score for game %s: %v", gameID, err)
				return err
			}
		}

		now := time.Now().UTC()
		for medalID, tier := range snap.Achievements {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO achievements (profile_id, medal_id, tier, earned_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(profile_id, medal_id) DO UPDATE SET
    tier = excluded.tier,
    earned_at = excluded.earned_at
WHERE (CASE excluded.tier WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 WHEN 'bronze' THEN 1 ELSE 0 END) >
      (CASE achievements.tier WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 WHEN 'bronze' THEN 1 ELSE 0 END)
`, profileID, medalID, tier, now); err != nil {
				log.Error("failed to import achievement %s: %v", medalID, err)
				return err
			}
		}

		for _, date := range snap.DailyChallenge.CompletedDates {
			score := snap.DailyChallenge.Scores[date]
			if _, err := tx.ExecContext(ctx, `
INSERT INTO daily_challenges (profile_id, date, score)
VALUES (?, ?, ?)
ON CONFLICT(profile_id, date) DO UPDATE SET
    score = MAX(daily_challenges.score, excluded.score)
`, profileID, date, score); err != nil {
				log.Error("failed to import daily completion %s: %v", date, err)
				return err
			}
		}

		for key, value := range snap.Preferences {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO preferences (profile_id, key, value)
VALUES (?, ?, ?)
ON CONFLICT(profile_id, key) DO UPDATE SET value = excluded.value
`, profileID, key, value); err != nil {
				log.Error("failed to import preference %s: %v", key, err)
				return err
			}
		}

		log.Debug("snapshot imported for profile %s", profileID)
		return nil
	})
}
