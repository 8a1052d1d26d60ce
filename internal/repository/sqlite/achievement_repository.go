package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

type achievementRepository struct {
	db *sql.DB
}

// NewAchievementRepository creates a new AchievementRepository implementation
func NewAchievementRepository(db *sql.DB) repository.AchievementRepository {
	return &achievementRepository{db: db}
}

// Upsert writes a medal tier. The conflict clause only fires when the new
// tier outranks the stored one, so a downgrade is structurally impossible
// regardless of the caller.
func (r *achievementRepository) Upsert(ctx context.Context, profileID, medalID, tier string, earnedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("upserting achievement: profile_id=%s, medal_id=%s, tier=%s", profileID, medalID, tier)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO achievements (profile_id, medal_id, tier, earned_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(profile_id, medal_id) DO UPDATE SET
    tier = excluded.tier,
    earned_at = excluded.earned_at
WHERE (CASE excluded.tier WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 WHEN 'bronze' THEN 1 ELSE 0 END) >
      (CASE achievements.tier WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 WHEN 'bronze' THEN 1 ELSE 0 END)
`, profileID, medalID, tier, earnedAt)
	if err != nil {
		log.Error("failed to upsert achievement: %v", err)
	}
	return err
}

func (r *achievementRepository) ListByProfile(ctx context.Context, profileID string) ([]models.Achievement, error) {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("listing achievements: profile_id=%s", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, medal_id, tier, earned_at
FROM achievements
WHERE profile_id = ?
ORDER BY medal_id ASC
`, profileID)
	if err != nil {
		log.Error("failed to list achievements: %v", err)
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ProfileID, &a.MedalID, &a.Tier, &a.EarnedAt); err != nil {
			log.Error("failed to scan achievement row: %v", err)
			return nil, err
		}
		achievements = append(achievements, a)
	}
	log.Debug("found %d achievements", len(achievements))
	return achievements, rows.Err()
}
