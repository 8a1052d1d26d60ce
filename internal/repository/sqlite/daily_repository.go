package sqlite

import (
	"context"
	"database/sql"

	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

type dailyChallengeRepository struct {
	db *sql.DB
}

// NewDailyChallengeRepository creates a new DailyChallengeRepository implementation
func NewDailyChallengeRepository(db *sql.DB) repository.DailyChallengeRepository {
	return &dailyChallengeRepository{db: db}
}

// Upsert records a completion for a calendar date. Re-completing the same
// date keeps the higher score.
func (r *dailyChallengeRepository) Upsert(ctx context.Context, profileID, date string, score int) error {
	log := logger.FromContext(ctx).WithPrefix("daily_repo")
	log.Debug("upserting daily completion: profile_id=%s, date=%s, score=%d", profileID, date, score)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_challenges (profile_id, date, score)
VALUES (?, ?, ?)
ON CONFLICT(profile_id, date) DO UPDATE SET
    score = MAX(daily_challenges.score, excluded.score)
`, profileID, date, score)
	if err != nil {
		log.Error("failed to upsert daily completion: %v", err)
	}
	return err
}

func (r *dailyChallengeRepository) ListByProfile(ctx context.Context, profileID string) ([]models.DailyChallengeCompletion, error) {
	log := logger.FromContext(ctx).WithPrefix("daily_repo")
	log.Debug("listing daily completions: profile_id=%s", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, date, score
FROM daily_challenges
WHERE profile_id = ?
ORDER BY date ASC
`, profileID)
	if err != nil {
		log.Error("failed to list daily completions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var completions []models.DailyChallengeCompletion
	for rows.Next() {
		var c models.DailyChallengeCompletion
		if err := rows.Scan(&c.ProfileID, &c.Date, &c.Score); err != nil {
			log.Error("failed to scan daily completion row: %v", err)
			return nil, err
		}
		completions = append(completions, c)
	}
	log.Debug("found %d daily completions", len(completions))
	return completions, rows.Err()
}

func (r *dailyChallengeRepository) ListDates(ctx context.Context, profileID string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("daily_repo")
	log.Debug("listing completion dates: profile_id=%s", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT date
FROM daily_challenges
WHERE profile_id = ?
ORDER BY date ASC
`, profileID)
	if err != nil {
		log.Error("failed to list completion dates: %v", err)
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			log.Error("failed to scan completion date: %v", err)
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
