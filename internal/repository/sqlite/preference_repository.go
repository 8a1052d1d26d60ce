package sqlite

import (
	"context"
	"database/sql"

	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

type preferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository implementation
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Set(ctx context.Context, profileID, key, value string) error {
	log := logger.FromContext(ctx).WithPrefix("preference_repo")
	log.Debug("setting preference: profile_id=%s, key=%s", profileID, key)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO preferences (profile_id, key, value)
VALUES (?, ?, ?)
ON CONFLICT(profile_id, key) DO UPDATE SET value = excluded.value
`, profileID, key, value)
	if err != nil {
		log.Error("failed to set preference: %v", err)
	}
	return err
}

func (r *preferenceRepository) ListByProfile(ctx context.Context, profileID string) ([]models.Preference, error) {
	log := logger.FromContext(ctx).WithPrefix("preference_repo")
	log.Debug("listing preferences: profile_id=%s", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, key, value
FROM preferences
WHERE profile_id = ?
ORDER BY key ASC
`, profileID)
	if err != nil {
		log.Error("failed to list preferences: %v", err)
		return nil, err
	}
	defer rows.Close()

	var prefs []models.Preference
	for rows.Next() {
		var p models.Preference
		if err := rows.Scan(&p.ProfileID, &p.Key, &p.Value); err != nil {
			log.Error("failed to scan preference row: %v", err)
			return nil, err
		}
		prefs = append(prefs, p)
	}
	log.Debug("found %d preferences", len(prefs))
	return prefs, rows.Err()
}
