// Package input translates terminal key and pointer events into player intents
// Intents carry no game logic; the caller maps them onto engine transitions
package input

import "github.com/lixenwraith/grid-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentDirection   // Arrows, WASD, HJKL, pointer
	IntentStart       // Enter, Space on title screen
	IntentTogglePause // P, Esc
	IntentToggleMute  // M
	IntentRetry       // R on game over
	IntentNewGame     // N on game over
	IntentQuit        // Q, Ctrl+C
	IntentResize      // Terminal resize event

	// Name entry on game over
	IntentNameChar
	IntentNameBackspace
	IntentNameSubmit
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentDirection:     "direction",
	IntentStart:         "start",
	IntentTogglePause:   "toggle_pause",
	IntentToggleMute:    "toggle_mute",
	IntentRetry:         "retry",
	IntentNewGame:       "new_game",
	IntentQuit:          "quit",
	IntentResize:        "resize",
	IntentNameChar:      "name_char",
	IntentNameBackspace: "name_backspace",
	IntentNameSubmit:    "name_submit",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one translated input action
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentDirection
	Char      rune           // IntentNameChar
}

// None is the zero intent
var None = Intent{}

func directionIntent(d core.Direction) Intent {
	return Intent{Type: IntentDirection, Direction: d}
}
