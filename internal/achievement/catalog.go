package achievement

import "github.com/mirela/brainplay/internal/models"

// Context carries everything a medal predicate may look at.
type Context struct {
	Stats             models.GameStats
	TotalGamesPlayed  int
	GamesPlayedByGame map[string]int
}

// Medal defines one achievement with independent per-tier predicates.
// Predicates are pure; a medal may scope itself to a single game via
// Stats.GameID.
type Medal struct {
	ID     string
	Name   string
	Bronze func(Context) bool
	Silver func(Context) bool
	Gold   func(Context) bool
}

// Catalog is the fixed medal set. Thresholds are tuned so bronze is
// reachable in a first session and gold takes sustained play.
var Catalog = []Medal{
	{
		ID:     "getting-started",
		Name:   "Getting Started",
		Bronze: func(c Context) bool { return c.TotalGamesPlayed >= 1 },
		Silver: func(c Context) bool { return c.TotalGamesPlayed >= 10 },
		Gold:   func(c Context) bool { return c.TotalGamesPlayed >= 50 },
	},
	{
		ID:     "high-roller",
		Name:   "High Roller",
		Bronze: func(c Context) bool { return c.Stats.Score >= 50 },
		Silver: func(c Context) bool { return c.Stats.Score >= 100 },
		Gold:   func(c Context) bool { return c.Stats.Score >= 250 },
	},
	{
		ID:     "on-fire",
		Name:   "On Fire",
		Bronze: func(c Context) bool { return c.Stats.BestStreak >= 5 },
		Silver: func(c Context) bool { return c.Stats.BestStreak >= 10 },
		Gold:   func(c Context) bool { return c.Stats.BestStreak >= 20 },
	},
	{
		ID:     "explorer",
		Name:   "Explorer",
		Bronze: func(c Context) bool { return gamesTried(c) >= 2 },
		Silver: func(c Context) bool { return gamesTried(c) >= 4 },
		Gold:   func(c Context) bool { return gamesTried(c) >= 6 },
	},
	{
		ID:     "sharp-eye",
		Name:   "Sharp Eye",
		Bronze: func(c Context) bool { return c.Stats.Total > 0 && c.Stats.Accuracy() >= 0.8 },
		Silver: func(c Context) bool { return c.Stats.Total > 0 && c.Stats.Accuracy() >= 0.9 },
		Gold:   func(c Context) bool { return c.Stats.Total > 0 && c.Stats.Accuracy() >= 1.0 },
	},
	{
		ID:     "math-blitz-master",
		Name:   "Math Blitz Master",
		Bronze: func(c Context) bool { return c.Stats.GameID == "math-blitz" && c.Stats.Score >= 30 },
		Silver: func(c Context) bool { return c.Stats.GameID == "math-blitz" && c.Stats.Score >= 80 },
		Gold:   func(c Context) bool { return c.Stats.GameID == "math-blitz" && c.Stats.Score >= 150 },
	},
}

func gamesTried(c Context) int {
	count := 0
	for _, played := range c.GamesPlayedByGame {
		if played > 0 {
			count++
		}
	}
	return count
}
