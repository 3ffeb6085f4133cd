package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/level"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/powerup"
)

// Options is the full tuning of one game instance
type Options struct {
	GridSize int

	Level   level.Settings
	Effects powerup.Durations

	BoostInterval    time.Duration
	MaxCountdownStep int // Countdown decrement cap as a multiple of the effective interval

	PowerUpChance    float64
	SecondaryChance  float64
	SpawnRetryBudget int

	StartHead      core.Cell
	StartDirection core.Direction
	StartLength    int
	InputCapacity  int

	TransitionDuration time.Duration
	FireworkBursts     int
	FireworkSpacing    time.Duration
}

// DefaultOptions returns the canonical tuning
func DefaultOptions() Options {
	return Options{
		GridSize:           parameter.GridSize,
		Level:              level.DefaultSettings(),
		Effects:            powerup.DefaultDurations(),
		BoostInterval:      parameter.BoostTickInterval,
		MaxCountdownStep:   parameter.MaxCountdownStep,
		PowerUpChance:      parameter.PowerUpSpawnChance,
		SecondaryChance:    parameter.FoodSecondaryChance,
		SpawnRetryBudget:   parameter.SpawnRetryBudget,
		StartHead:          core.Cell{X: parameter.SnakeStartX, Z: parameter.SnakeStartZ},
		StartDirection:     core.DirUp,
		StartLength:        parameter.SnakeStartLength,
		InputCapacity:      parameter.InputQueueCapacity,
		TransitionDuration: parameter.LevelTransitionDuration,
		FireworkBursts:     parameter.FireworkBurstCount,
		FireworkSpacing:    parameter.FireworkBurstSpacing,
	}
}
