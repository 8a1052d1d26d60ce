package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/mirela/brainplay/internal/models"
	"github.com/mirela/brainplay/internal/repository"
	"github.com/mirela/brainplay/internal/repository/sqlite"
	"github.com/mirela/brainplay/internal/testutil"
)

type ProfileRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProfileRepository
}

func (s *ProfileRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProfileRepository(s.db)
}

func (s *ProfileRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProfileRepositorySuite) newProfile(id, code string) models.Profile {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Profile{
		ID:           id,
		Name:         "Mia",
		AvatarColor:  "#ff8800",
		AccessCode:   code,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

func (s *ProfileRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()
	profile := s.newProfile("p1", "BRAVE-OTTER-07")

	err := s.repo.Create(ctx, profile)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("Mia", got.Name)
	s.Assert().Equal("BRAVE-OTTER-07", got.AccessCode)
	s.Assert().Equal("#ff8800", got.AvatarColor)
}

func (s *ProfileRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nope")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ProfileRepositorySuite) TestGetByAccessCode() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newProfile("p1", "SWIFT-LYNX-42")))

	got, err := s.repo.GetByAccessCode(ctx, "SWIFT-LYNX-42")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("p1", got.ID)

	missing, err := s.repo.GetByAccessCode(ctx, "WRONG-CODE-00")
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func (s *ProfileRepositorySuite) TestAccessCodeUniqueness() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newProfile("p1", "SWIFT-LYNX-42")))

	err := s.repo.Create(ctx, s.newProfile("p2", "SWIFT-LYNX-42"))
	s.Assert().Error(err, "duplicate access code must be rejected")
}

func (s *ProfileRepositorySuite) TestAccessCodeExists() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newProfile("p1", "JOLLY-PANDA-11")))

	taken, err := s.repo.AccessCodeExists(ctx, "JOLLY-PANDA-11")
	s.Require().NoError(err)
	s.Assert().True(taken)

	free, err := s.repo.AccessCodeExists(ctx, "JOLLY-PANDA-12")
	s.Require().NoError(err)
	s.Assert().False(free)
}

func (s *ProfileRepositorySuite) TestPartialUpdate() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newProfile("p1", "KEEN-RAVEN-88")))

	name := "Mio"
	got, err := s.repo.Update(ctx, "p1", &name, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("Mio", got.Name)
	s.Assert().Equal("#ff8800", got.AvatarColor, "omitted field must be untouched")

	color := "#00cc66"
	got, err = s.repo.Update(ctx, "p1", nil, &color)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("Mio", got.Name)
	s.Assert().Equal("#00cc66", got.AvatarColor)
}

func (s *ProfileRepositorySuite) TestUpdateMissingReturnsNil() {
	name := "Nobody"
	got, err := s.repo.Update(context.Background(), "nope", &name, nil)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ProfileRepositorySuite) TestTouchLastActive() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newProfile("p1", "WARM-MOOSE-03")))

	later := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	s.Require().NoError(s.repo.TouchLastActive(ctx, "p1", later))

	got, err := s.repo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().WithinDuration(later, got.LastActiveAt, time.Second)
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}
