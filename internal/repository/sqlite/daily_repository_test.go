package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/mirela/brainplay/internal/repository"
	"github.com/mirela/brainplay/internal/repository/sqlite"
	"github.com/mirela/brainplay/internal/testutil"
)

type DailyRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.DailyChallengeRepository
}

func (s *DailyRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDailyChallengeRepository(s.db)

	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO profiles (id, name, access_code) VALUES ('p1', 'Mia', 'CODE-p1')
	`)
	s.Require().NoError(err)
}

func (s *DailyRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DailyRepositorySuite) TestUpsertKeepsHigherScore() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-15", 80))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-15", 30))

	list, err := s.repo.ListByProfile(ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Assert().Equal(80, list[0].Score)

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-15", 95))
	list, err = s.repo.ListByProfile(ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Assert().Equal(95, list[0].Score)
}

func (s *DailyRepositorySuite) TestListDates() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-16", 10))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-14", 20))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "2025-06-15", 30))

	dates, err := s.repo.ListDates(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"2025-06-14", "2025-06-15", "2025-06-16"}, dates)
}

func (s *DailyRepositorySuite) TestListEmptyProfile() {
	dates, err := s.repo.ListDates(context.Background(), "p1")
	s.Require().NoError(err)
	s.Assert().Empty(dates)
}

func TestDailyRepositorySuite(t *testing.T) {
	suite.Run(t, new(DailyRepositorySuite))
}
