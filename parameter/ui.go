package parameter

import "time"

// Terminal Layout
const (
	// CellWidth is the number of terminal columns per grid cell (cells appear square)
	CellWidth = 2

	// HUDHeight is the number of rows reserved above the playfield
	HUDHeight = 2
)

// Glyphs
const (
	GlyphHead      = '@'
	GlyphBody      = 'o'
	GlyphTail      = '.'
	GlyphFood      = '*'
	GlyphCrunchy   = '%'
	GlyphBonus     = '$'
	GlyphGhost     = 'G'
	GlyphSpeed     = '>'
	GlyphTrail     = '·'
	GlyphDebris    = '#'
	GlyphConfetti  = '+'
	GlyphSpark     = '✦'
	GlyphWisp      = '~'
	GlyphBorderH   = '─'
	GlyphBorderV   = '│'
	GlyphCornerTL  = '┌'
	GlyphCornerTR  = '┐'
	GlyphCornerBL  = '└'
	GlyphCornerBR  = '┘'
)

// Effect Display
const (
	// GhostBlinkThreshold starts blinking the invulnerable snake before expiry
	GhostBlinkThreshold = 2 * time.Second

	// GhostBlinkPeriod is the on+off cycle of the expiry blink
	GhostBlinkPeriod = 250 * time.Millisecond
)

// Overlay Text
const (
	TitleText       = "G R I D   S N A K E"
	StartPrompt     = "press ENTER or SPACE to start"
	PauseText       = "PAUSED"
	PausePrompt     = "press P or ESC to resume"
	GameOverText    = "GAME OVER"
	GameOverPrompt  = "R retry level   N new game   Q quit"
	NameEntryPrompt = "NEW HIGH SCORE  enter name: "
	MuteOnText      = " MUTED "
	MuteOffText     = " SOUND "
)
