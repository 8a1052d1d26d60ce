package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mirela/brainplay/internal/accesscode"
	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
)

const maxNameLength = 32

// ProfileService handles profile identity and lookup. The access code is
// the only credential; there is no password or session.
type ProfileService interface {
	CreateProfile(ctx context.Context, name, avatarColor string) (*models.FullProfile, error)
	LoginWithCode(ctx context.Context, code string) (*models.FullProfile, error)
	GetProfile(ctx context.Context, id string) (*models.FullProfile, error)
	UpdateProfile(ctx context.Context, id string, name, avatarColor *string) (*models.Profile, error)
}

type profileService struct {
	profileRepo     repository.ProfileRepository
	progressRepo    repository.ProgressRepository
	achievementRepo repository.AchievementRepository
	dailyRepo       repository.DailyChallengeRepository
	preferenceRepo  repository.PreferenceRepository
	issuer          *accesscode.Issuer
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo repository.ProfileRepository,
	progressRepo repository.ProgressRepository,
	achievementRepo repository.AchievementRepository,
	dailyRepo repository.DailyChallengeRepository,
	preferenceRepo repository.PreferenceRepository,
	issuer *accesscode.Issuer,
) ProfileService {
	return &profileService{
		profileRepo:     profileRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
		dailyRepo:       dailyRepo,
		preferenceRepo:  preferenceRepo,
		issuer:          issuer,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewValidationError("name", "cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", errors.NewValidationError("name", "must be at most 32 characters")
	}
	return name, nil
}

func (s *profileService) CreateProfile(ctx context.Context, name, avatarColor string) (*models.FullProfile, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating profile")

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	code, err := s.issuer.Issue(ctx, s.profileRepo.AccessCodeExists)
	if err != nil {
		// Exhaustion means the code namespace is in trouble; surface it
		// loudly rather than persisting a collision.
		log.Error("access code issuance failed: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now().UTC()
	profile := models.Profile{
		ID:           uuid.NewString(),
		Name:         name,
		AvatarColor:  avatarColor,
		AccessCode:   code,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("profile created: id=%s", profile.ID)
	return &models.FullProfile{
		Profile:         profile,
		Progress:        []models.GameProgress{},
		Achievements:    []models.Achievement{},
		DailyChallenges: []models.DailyChallengeCompletion{},
		Preferences:     []models.Preference{},
	}, nil
}

func (s *profileService) LoginWithCode(ctx context.Context, code string) (*models.FullProfile, error) {
	log := logger.FromContext(ctx)

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, errors.NewValidationError("accessCode", "cannot be empty")
	}
	log.Debug("logging in with access code")

	profile, err := s.profileRepo.GetByAccessCode(ctx, code)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		log.Debug("unknown access code")
		return nil, errors.NewNotFoundError("profile", "access code")
	}

	return s.fullProfile(ctx, profile)
}

func (s *profileService) GetProfile(ctx context.Context, id string) (*models.FullProfile, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching profile: id=%s", id)

	profile, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", id)
	}

	return s.fullProfile(ctx, profile)
}

func (s *profileService) UpdateProfile(ctx context.Context, id string, name, avatarColor *string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating profile: id=%s", id)

	if name != nil {
		validated, err := validateName(*name)
		if err != nil {
			return nil, err
		}
		name = &validated
	}

	profile, err := s.profileRepo.Update(ctx, id, name, avatarColor)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", id)
	}
	return profile, nil
}

// fullProfile bumps last_active_at and assembles the profile with all
// owned rows. Every authenticated fetch goes through here.
func (s *profileService) fullProfile(ctx context.Context, profile *models.Profile) (*models.FullProfile, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if err := s.profileRepo.TouchLastActive(ctx, profile.ID, now); err != nil {
		return nil, errors.NewInternalError(err)
	}
	profile.LastActiveAt = now

	progress, err := s.progressRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	achievements, err := s.achievementRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	daily, err := s.dailyRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	prefs, err := s.preferenceRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	if progress == nil {
		progress = []models.GameProgress{}
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	if daily == nil {
		daily = []models.DailyChallengeCompletion{}
	}
	if prefs == nil {
		prefs = []models.Preference{}
	}

	log.Debug("full profile assembled: id=%s, progress=%d, achievements=%d", profile.ID, len(progress), len(achievements))
	return &models.FullProfile{
		Profile:         *profile,
		Progress:        progress,
		Achievements:    achievements,
		DailyChallenges: daily,
		Preferences:     prefs,
	}, nil
}
