package models

import "time"

// Tier values for achievements, ranked none < bronze < silver < gold.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// TierRank maps a tier to its rank. Unknown or empty tiers rank 0.
func TierRank(tier string) int {
	switch tier {
	case TierBronze:
		return 1
	case TierSilver:
		return 2
	case TierGold:
		return 3
	default:
		return 0
	}
}

// ValidTier reports whether tier is one of bronze, silver or gold.
func ValidTier(tier string) bool {
	return TierRank(tier) > 0
}

type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AvatarColor  string    `json:"avatarColor"`
	AccessCode   string    `json:"accessCode"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// GameProgress is the per-(profile, game) progress row. HighScore,
// GamesPlayed, TotalScore and BestStreak only ever grow; AdaptiveLevel
// tracks current calibration and may move in either direction on direct
// gameplay updates.
type GameProgress struct {
	ProfileID     string  `json:"profileId"`
	GameID        string  `json:"gameId"`
	HighScore     int     `json:"highScore"`
	GamesPlayed   int     `json:"gamesPlayed"`
	TotalScore    int     `json:"totalScore"`
	BestStreak    int     `json:"bestStreak"`
	AdaptiveLevel float64 `json:"adaptiveLevel"`
}

type Achievement struct {
	ProfileID string    `json:"profileId"`
	MedalID   string    `json:"medalId"`
	Tier      string    `json:"tier"`
	EarnedAt  time.Time `json:"earnedAt"`
}

type DailyChallengeCompletion struct {
	ProfileID string `json:"profileId"`
	Date      string `json:"date"`
	Score     int    `json:"score"`
}

type Preference struct {
	ProfileID string `json:"profileId"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// FullProfile is the profile plus every owned row, returned on login and
// authenticated fetches.
type FullProfile struct {
	Profile         Profile                    `json:"profile"`
	Progress        []GameProgress             `json:"progress"`
	Achievements    []Achievement              `json:"achievements"`
	DailyChallenges []DailyChallengeCompletion `json:"dailyChallenges"`
	Preferences     []Preference               `json:"preferences"`
}

// ProgressUpdate is one game-end event applied to a progress row.
// BestStreak and AdaptiveLevel are optional; a nil BestStreak counts as
// zero, a nil AdaptiveLevel leaves the stored calibration untouched.
type ProgressUpdate struct {
	ProfileID     string
	GameID        string
	Score         int
	BestStreak    *int
	AdaptiveLevel *float64
}

// LeaderboardEntry is a row on the per-game high score board.
type LeaderboardEntry struct {
	ProfileID   string `json:"profileId"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
	GameID      string `json:"gameId"`
	HighScore   int    `json:"highScore"`
}

// StreakInfo reports daily challenge streaks. Current is the run ending
// today; Longest is the best run ever recorded.
type StreakInfo struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// GameStats describes a single finished game, as reported by the client.
type GameStats struct {
	GameID     string `json:"gameId"`
	Score      int    `json:"score"`
	BestStreak int    `json:"bestStreak"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
}

// Accuracy returns the fraction of correct answers in [0, 1], or 0 when
// nothing was answered.
func (s GameStats) Accuracy() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}
