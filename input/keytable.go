package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// KeyTable maps keys to intents
// Rune bindings are matched case-insensitively
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     directionIntent(core.DirUp),
			tcell.KeyDown:   directionIntent(core.DirDown),
			tcell.KeyLeft:   directionIntent(core.DirLeft),
			tcell.KeyRight:  directionIntent(core.DirRight),
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyEscape: {Type: IntentTogglePause},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': directionIntent(core.DirUp),
			's': directionIntent(core.DirDown),
			'a': directionIntent(core.DirLeft),
			'd': directionIntent(core.DirRight),
			'k': directionIntent(core.DirUp),
			'j': directionIntent(core.DirDown),
			'h': directionIntent(core.DirLeft),
			'l': directionIntent(core.DirRight),
			' ': {Type: IntentStart},
			'p': {Type: IntentTogglePause},
			'm': {Type: IntentToggleMute},
			'r': {Type: IntentRetry},
			'n': {Type: IntentNewGame},
			'q': {Type: IntentQuit},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event against the table
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		in, ok := kt.Runes[toLower(ev.Rune())]
		return in, ok
	}
	in, ok := kt.SpecialKeys[ev.Key()]
	return in, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
