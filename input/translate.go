package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// Translator turns tcell events into intents using a key table
type Translator struct {
	table *KeyTable
}

// NewTranslator uses table, or the defaults when nil
func NewTranslator(table *KeyTable) *Translator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Translator{table: table}
}

// Table returns the active bindings
func (t *Translator) Table() *KeyTable {
	return t.table
}

// FromKey translates a key press
// While name entry is active printable runes become name characters and only Ctrl+C escapes
func (t *Translator) FromKey(ev *tcell.EventKey, nameEntryActive bool) Intent {
	if nameEntryActive {
		switch ev.Key() {
		case tcell.KeyEnter:
			return Intent{Type: IntentNameSubmit}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Intent{Type: IntentNameBackspace}
		case tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyRune:
			if unicode.IsPrint(ev.Rune()) {
				return Intent{Type: IntentNameChar, Char: ev.Rune()}
			}
		}
		return None
	}

	if in, ok := t.table.Lookup(ev); ok {
		return in
	}
	return None
}

// FromKey translates with the default bindings
func FromKey(ev *tcell.EventKey, nameEntryActive bool) Intent {
	return defaultTranslator.FromKey(ev, nameEntryActive)
}

var defaultTranslator = NewTranslator(nil)

// FromPointer maps a click or touch at x,y to the direction of its dominant
// axis relative to the head at headX,headY, in screen cells
// xScale compensates for cells wider than they are tall
// Returns None when the pointer is on the head
func FromPointer(headX, headY, x, y, xScale int) Intent {
	if xScale < 1 {
		xScale = 1
	}
	dx := (x - headX) / xScale
	dy := y - headY
	if dx == 0 && dy == 0 {
		return None
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return directionIntent(core.DirRight)
		}
		return directionIntent(core.DirLeft)
	}
	if dy > 0 {
		return directionIntent(core.DirDown)
	}
	return directionIntent(core.DirUp)
}

// FromMouse translates a primary-button press into a pointer direction
func FromMouse(ev *tcell.EventMouse, headX, headY, xScale int) Intent {
	if ev.Buttons()&tcell.Button1 == 0 {
		return None
	}
	x, y := ev.Position()
	return FromPointer(headX, headY, x, y, xScale)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
