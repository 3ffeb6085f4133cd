package core

// Mode is the top-level game state
type Mode uint8

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeLevelTransition
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModePaused:
		return "PAUSED"
	case ModeLevelTransition:
		return "LEVEL_TRANSITION"
	case ModeGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
