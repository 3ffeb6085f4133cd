package parameter

// Leaderboard
const (
	// LeaderboardKey is the fixed key under which the leaderboard is persisted
	LeaderboardKey = "grid-snake.leaderboard"

	// LeaderboardSize is the number of entries retained
	LeaderboardSize = 5

	// LeaderboardDisplaySize is the number of entries shown on the game over screen
	LeaderboardDisplaySize = 3

	// NameMaxLength is the maximum player name length in runes
	NameMaxLength = 10

	// DefaultPlayerName replaces an empty submitted name
	DefaultPlayerName = "anon"
)
