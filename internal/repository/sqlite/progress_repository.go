package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

// defaultAdaptiveLevel seeds calibration for a first-ever play of a game.
const defaultAdaptiveLevel = 5.0

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(ctx context.Context, u models.ProgressUpdate) (*models.GameProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: profile_id=%s, game_id=%s, score=%d", u.ProfileID, u.GameID, u.Score)

	bestStreak := 0
	if u.BestStreak != nil {
		bestStreak = *u.BestStreak
	}
	adaptiveLevel := defaultAdaptiveLevel
	hasAdaptive := u.AdaptiveLevel != nil
	if hasAdaptive {
		adaptiveLevel = *u.AdaptiveLevel
	}

	var p models.GameProgress
	err := r.db.QueryRowContext(ctx, `
INSERT INTO game_progress (profile_id, game_id, high_score, games_played, total_score, best_streak, adaptive_level)
VALUES (?, ?, ?, 1, ?, ?, ?)
ON CONFLICT(profile_id, game_id) DO UPDATE SET
    high_score = MAX(game_progress.high_score, excluded.high_score),
    games_played = game_progress.games_played + 1,
    total_score = game_progress.total_score + excluded.total_score,
    best_streak = MAX(game_progress.best_streak, excluded.best_streak),
    adaptive_level = CASE WHEN ? THEN excluded.adaptive_level ELSE game_progress.adaptive_level END
RETURNING profile_id, game_id, high_score, games_played, total_score, best_streak, adaptive_level
`, u.ProfileID, u.GameID, u.Score, u.Score, bestStreak, adaptiveLevel, hasAdaptive).
		Scan(&p.ProfileID, &p.GameID, &p.HighScore, &p.GamesPlayed, &p.TotalScore, &p.BestStreak, &p.AdaptiveLevel)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
		return nil, err
	}
	log.Debug("progress upserted: high_score=%d, games_played=%d", p.HighScore, p.GamesPlayed)
	return &p, nil
}

func (r *progressRepository) Get(ctx context.Context, profileID, gameID string) (*models.GameProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: profile_id=%s, game_id=%s", profileID, gameID)

	var p models.GameProgress
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, game_id, high_score, games_played, total_score, best_streak, adaptive_level
FROM game_progress
WHERE profile_id = ? AND game_id = ?
`, profileID, gameID).Scan(&p.ProfileID, &p.GameID, &p.HighScore, &p.GamesPlayed, &p.TotalScore, &p.BestStreak, &p.AdaptiveLevel)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress not found: profile_id=%s, game_id=%s", profileID, gameID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) ListByProfile(ctx context.Context, profileID string) ([]models.GameProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: profile_id=%s", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, game_id, high_score, games_played, total_score, best_streak, adaptive_level
FROM game_progress
WHERE profile_id = ?
ORDER BY game_id ASC
`, profileID)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var progress []models.GameProgress
	for rows.Next() {
		var p models.GameProgress
		if err := rows.Scan(&p.ProfileID, &p.GameID, &p.HighScore, &p.GamesPlayed, &p.TotalScore, &p.BestStreak, &p.AdaptiveLevel); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		progress = append(progress, p)
	}
	log.Debug("found %d progress rows", len(progress))
	return progress, rows.Err()
}

func (r *progressRepository) TopScores(ctx context.Context, gameID string, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("fetching leaderboard: game_id=%s, limit=%d", gameID, limit)

	if limit <= 0 {
		limit = 10
	}

	query := sqlBuilder.Select(
		"gp.profile_id", "p.name", "p.avatar_color", "gp.game_id", "gp.high_score",
	).
		From("game_progress gp").
		Join("profiles p ON p.id = gp.profile_id").
		Where("gp.high_score > 0").
		OrderBy("gp.high_score DESC", "p.name ASC").
		Limit(uint64(limit))
	if gameID != "" {
		query = query.Where("gp.game_id = ?", gameID)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.ProfileID, &e.Name, &e.AvatarColor, &e.GameID, &e.HighScore); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	log.Debug("found %d leaderboard entries", len(entries))
	return entries, rows.Err()
}
