package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/grid-snake/core"
)

// Mode is the top-level game state
type Mode = core.Mode

const (
	ModeStart           = core.ModeStart
	ModePlaying         = core.ModePlaying
	ModePaused          = core.ModePaused
	ModeLevelTransition = core.ModeLevelTransition
	ModeGameOver        = core.ModeGameOver
)

var (
	// ErrInvalidTransition is returned by transition methods called from the wrong mode
	ErrInvalidTransition = errors.New("engine: invalid transition")

	// ErrNotPlaying is returned by Step outside PLAYING
	ErrNotPlaying = errors.New("engine: not playing")
)

var validTransitions = map[Mode][]Mode{
	ModeStart:           {ModePlaying},
	ModePlaying:         {ModePaused, ModeLevelTransition, ModeGameOver},
	ModePaused:          {ModePlaying},
	ModeLevelTransition: {ModePlaying},
	ModeGameOver:        {ModePlaying, ModeStart},
}

// CanTransition checks if a mode transition is valid
func CanTransition(from, to Mode) bool {
	for _, m := range validTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

func transitionError(from, to Mode) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
