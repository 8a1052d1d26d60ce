package models

// Snapshot is the client-local state a guest accumulates before linking
// to a profile. It originates from an untrusted, possibly stale client,
// so every field is validated at the merge boundary; malformed entries
// are skipped, never fatal.
type Snapshot struct {
	PlayerName     string            `json:"playerName"`
	HighScores     map[string]int    `json:"highScores"`
	PlayProfile    PlayProfile       `json:"playProfile"`
	Achievements   map[string]string `json:"achievements"`
	DailyChallenge DailyRecord       `json:"dailyChallenge"`
	Preferences    map[string]string `json:"preferences"`
}

// PlayProfile is the aggregate play-count portion of a Snapshot.
type PlayProfile struct {
	TotalGamesPlayed int            `json:"totalGamesPlayed"`
	GamesPlayed      map[string]int `json:"gamesPlayed"`
}

// DailyRecord is the client-local daily challenge completion record.
type DailyRecord struct {
	CompletedDates []string       `json:"completedDates"`
	Scores         map[string]int `json:"scores"`
}
