package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/mirela/brainplay/internal/accesscode"
	apperrors "github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/services"
	"github.com/mirela/brainplay/internal/testutil/mocks"
)

type profileServiceMocks struct {
	profileRepo     *mocks.MockProfileRepository
	progressRepo    *mocks.MockProgressRepository
	achievementRepo *mocks.MockAchievementRepository
	dailyRepo       *mocks.MockDailyChallengeRepository
	preferenceRepo  *mocks.MockPreferenceRepository
}

func newProfileService() (services.ProfileService, *profileServiceMocks) {
	m := &profileServiceMocks{
		profileRepo:     new(mocks.MockProfileRepository),
		progressRepo:    new(mocks.MockProgressRepository),
		achievementRepo: new(mocks.MockAchievementRepository),
		dailyRepo:       new(mocks.MockDailyChallengeRepository),
		preferenceRepo:  new(mocks.MockPreferenceRepository),
	}
	svc := services.NewProfileService(
		m.profileRepo, m.progressRepo, m.achievementRepo, m.dailyRepo, m.preferenceRepo,
		accesscode.New(100),
	)
	return svc, m
}

func (m *profileServiceMocks) expectFullProfileLoad(profileID string) {
	m.profileRepo.On("TouchLastActive", mock.Anything, profileID, mock.Anything).Return(nil)
	m.progressRepo.On("ListByProfile", mock.Anything, profileID).Return([]models.GameProgress{}, nil)
	m.achievementRepo.On("ListByProfile", mock.Anything, profileID).Return([]models.Achievement{}, nil)
	m.dailyRepo.On("ListByProfile", mock.Anything, profileID).Return([]models.DailyChallengeCompletion{}, nil)
	m.preferenceRepo.On("ListByProfile", mock.Anything, profileID).Return([]models.Preference{}, nil)
}

func TestCreateProfile(t *testing.T) {
	svc, m := newProfileService()
	m.profileRepo.On("AccessCodeExists", mock.Anything, mock.Anything).Return(false, nil)
	m.profileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	full, err := svc.CreateProfile(context.Background(), "  Mia  ", "#ff8800")

	require.NoError(t, err)
	assert.Equal(t, "Mia", full.Profile.Name, "name must be trimmed")
	assert.NotEmpty(t, full.Profile.ID)
	assert.Regexp(t, `^[A-Z]+-[A-Z]+-\d{2}$`, full.Profile.AccessCode)
	assert.NotNil(t, full.Progress)
	assert.NotNil(t, full.Achievements)
	m.profileRepo.AssertExpectations(t)
}

func TestCreateProfile_NameValidation(t *testing.T) {
	svc, _ := newProfileService()

	_, err := svc.CreateProfile(context.Background(), "   ", "#fff")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	_, err = svc.CreateProfile(context.Background(), strings.Repeat("x", 33), "#fff")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestLoginWithCode_NormalizesCase(t *testing.T) {
	svc, m := newProfileService()
	profile := &models.Profile{ID: "p1", Name: "Mia", AccessCode: "BRAVE-OTTER-07"}
	m.profileRepo.On("GetByAccessCode", mock.Anything, "BRAVE-OTTER-07").Return(profile, nil)
	m.expectFullProfileLoad("p1")

	full, err := svc.LoginWithCode(context.Background(), "  brave-otter-07 ")

	require.NoError(t, err)
	assert.Equal(t, "p1", full.Profile.ID)
	m.profileRepo.AssertExpectations(t)
}

func TestLoginWithCode_UnknownCodeIs404(t *testing.T) {
	svc, m := newProfileService()
	m.profileRepo.On("GetByAccessCode", mock.Anything, "WRONG-CODE-00").Return(nil, nil)

	_, err := svc.LoginWithCode(context.Background(), "WRONG-CODE-00")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestGetProfile_AssemblesOwnedRows(t *testing.T) {
	svc, m := newProfileService()
	profile := &models.Profile{ID: "p1", Name: "Mia"}
	m.profileRepo.On("Get", mock.Anything, "p1").Return(profile, nil)
	m.profileRepo.On("TouchLastActive", mock.Anything, "p1", mock.Anything).Return(nil)
	m.progressRepo.On("ListByProfile", mock.Anything, "p1").Return([]models.GameProgress{
		{ProfileID: "p1", GameID: "math-blitz", HighScore: 90},
	}, nil)
	m.achievementRepo.On("ListByProfile", mock.Anything, "p1").Return([]models.Achievement{}, nil)
	m.dailyRepo.On("ListByProfile", mock.Anything, "p1").Return([]models.DailyChallengeCompletion{}, nil)
	m.preferenceRepo.On("ListByProfile", mock.Anything, "p1").Return([]models.Preference{}, nil)

	full, err := svc.GetProfile(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, full.Progress, 1)
	assert.Equal(t, 90, full.Progress[0].HighScore)
	assert.NotNil(t, full.DailyChallenges)
	assert.NotNil(t, full.Preferences)
}

func TestGetProfile_MissingIs404(t *testing.T) {
	svc, m := newProfileService()
	m.profileRepo.On("Get", mock.Anything, "nope").Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), "nope")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestUpdateProfile_ValidatesName(t *testing.T) {
	svc, _ := newProfileService()
	empty := " "

	_, err := svc.UpdateProfile(context.Background(), "p1", &empty, nil)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}
