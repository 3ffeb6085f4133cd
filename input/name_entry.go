package input

import (
	"strings"

	"github.com/lixenwraith/grid-snake/parameter"
)

// NameEntry is the bounded player-name buffer shown on game over
type NameEntry struct {
	runes  []rune
	active bool
}

// Begin activates entry with an empty buffer
func (n *NameEntry) Begin() {
	n.runes = n.runes[:0]
	n.active = true
}

// Active reports whether keystrokes go to the buffer
func (n *NameEntry) Active() bool {
	return n.active
}

// Append adds r unless the buffer is full or r is a control character
func (n *NameEntry) Append(r rune) bool {
	if !n.active || len(n.runes) >= parameter.NameMaxLength || r < ' ' {
		return false
	}
	n.runes = append(n.runes, r)
	return true
}

// Backspace removes the last rune
func (n *NameEntry) Backspace() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

// Text returns the current buffer
func (n *NameEntry) Text() string {
	return string(n.runes)
}

// Submit ends entry and returns the trimmed name
func (n *NameEntry) Submit() string {
	n.active = false
	return strings.TrimSpace(string(n.runes))
}

// Cancel ends entry without a result
func (n *NameEntry) Cancel() {
	n.active = false
	n.runes = n.runes[:0]
}
