package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/level"
	"github.com/lixenwraith/grid-snake/powerup"
	"github.com/lixenwraith/grid-snake/score"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
)

// SimulationState is the explicitly owned context of one run
// Mutated only by Game transitions and Step
type SimulationState struct {
	World   *grid.World
	Snake   *snake.Snake
	Input   *snake.InputQueue
	Spawner *spawn.Spawner
	Effects *powerup.Effects
	Level   *level.Controller
	Score   *score.Tracker

	Mode     Mode
	LastTick time.Time // Game time of the last accepted tick, or of the transition into PLAYING
	Ticks    uint64

	// Direction applied on the previous tick, for the reversal invariant
	LastApplied core.Direction

	// Snake configuration captured at level start, restored on retry
	LevelStartCells     []core.Cell
	LevelStartDirection core.Direction
}

func newSimulationState(opts Options, rng spawn.RNG) *SimulationState {
	world := grid.New(opts.GridSize)

	sp := spawn.New(world, rng)
	sp.SetPowerUpChance(opts.PowerUpChance)
	sp.SetSecondaryChance(opts.SecondaryChance)
	sp.SetRetryBudget(opts.SpawnRetryBudget)

	s := &SimulationState{
		World:       world,
		Snake:       snake.New(opts.StartHead, opts.StartDirection, opts.StartLength),
		Input:       snake.NewInputQueue(opts.InputCapacity),
		Spawner:     sp,
		Effects:     powerup.New(opts.Effects),
		Level:       level.New(opts.Level),
		Score:       score.NewTracker(),
		Mode:        ModeStart,
		LastApplied: opts.StartDirection,
	}
	s.captureLevelStart()
	return s
}

func (s *SimulationState) captureLevelStart() {
	s.LevelStartCells = s.Snake.Cells()
	s.LevelStartDirection = s.Snake.Direction()
}
