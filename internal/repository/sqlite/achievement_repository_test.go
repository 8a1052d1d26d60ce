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

type AchievementRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AchievementRepository
}

func (s *AchievementRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewAchievementRepository(s.db)

	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO profiles (id, name, access_code) VALUES ('p1', 'Mia', 'CODE-p1')
	`)
	s.Require().NoError(err)
}

func (s *AchievementRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *AchievementRepositorySuite) tierOf(medalID string) string {
	var tier string
	err := s.db.QueryRowContext(context.Background(), `
		SELECT tier FROM achievements WHERE profile_id = 'p1' AND medal_id = ?
	`, medalID).Scan(&tier)
	s.Require().NoError(err)
	return tier
}

func (s *AchievementRepositorySuite) TestUpsertAndList() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "getting-started", models.TierBronze, now))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "high-roller", models.TierSilver, now))

	list, err := s.repo.ListByProfile(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().Len(list, 2)
}

func (s *AchievementRepositorySuite) TestTierUpgrades() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "on-fire", models.TierBronze, now))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "on-fire", models.TierGold, now))

	s.Assert().Equal(models.TierGold, s.tierOf("on-fire"))
}

func (s *AchievementRepositorySuite) TestTierNeverDowngrades() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Upsert(ctx, "p1", "on-fire", models.TierGold, now))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "on-fire", models.TierBronze, now))
	s.Require().NoError(s.repo.Upsert(ctx, "p1", "on-fire", models.TierGold, now))

	s.Assert().Equal(models.TierGold, s.tierOf("on-fire"))

	list, err := s.repo.ListByProfile(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().Len(list, 1, "re-awarding must not duplicate the row")
}

func TestAchievementRepositorySuite(t *testing.T) {
	suite.Run(t, new(AchievementRepositorySuite))
}
