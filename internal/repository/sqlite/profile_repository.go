package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p models.Profile) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("creating profile: id=%s", p.ID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO profiles (id, name, avatar_color, access_code, created_at, last_active_at)
VALUES (?, ?, ?, ?, ?, ?)
`, p.ID, p.Name, p.AvatarColor, p.AccessCode, p.CreatedAt, p.LastActiveAt)
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return err
	}
	log.Debug("profile created: id=%s, access_code=%s", p.ID, p.AccessCode)
	return nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%s", id)

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, avatar_color, access_code, created_at, last_active_at
FROM profiles
WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.AvatarColor, &p.AccessCode, &p.CreatedAt, &p.LastActiveAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByAccessCode(ctx context.Context, code string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile by access code")

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, avatar_color, access_code, created_at, last_active_at
FROM profiles
WHERE access_code = ?
`, code).Scan(&p.ID, &p.Name, &p.AvatarColor, &p.AccessCode, &p.CreatedAt, &p.LastActiveAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no profile for access code")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile by access code: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, name, avatarColor *string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating profile: id=%s", id)

	query := sqlBuilder.Update("profiles").Where(squirrel.Eq{"id": id})
	if name != nil {
		query = query.Set("name", *name)
	}
	if avatarColor != nil {
		query = query.Set("avatar_color", *avatarColor)
	}
	if name == nil && avatarColor == nil {
		// Nothing to change; return the current row.
		return r.Get(ctx, id)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build update query: %v", err)
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to update profile: %v", err)
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Debug("profile not found for update: id=%s", id)
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *profileRepository) TouchLastActive(ctx context.Context, id string, t time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("bumping last_active_at: profile_id=%s", id)

	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET last_active_at = ? WHERE id = ?`, t, id)
	if err != nil {
		log.Error("failed to bump last_active_at: %v", err)
	}
	return err
}

func (r *profileRepository) AccessCodeExists(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE access_code = ?`, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Error("failed to check access code: %v", err)
		return false, err
	}
	return true, nil
}
