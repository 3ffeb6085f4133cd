package event

import (
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/spawn"
)

// TrailPayload carries the vacated tail cell
type TrailPayload struct {
	Cell core.Cell
}

// FoodEatenPayload identifies the consumed food
type FoodEatenPayload struct {
	Food  spawn.Food
	Score int // Score after consumption
}

type FoodSpawnedPayload struct {
	Food     spawn.Food
	Degraded bool
}

type PowerUpSpawnedPayload struct {
	PowerUp  spawn.PowerUp
	Degraded bool
}

// PowerUpEatenPayload identifies the consumed power-up and its score effect
type PowerUpEatenPayload struct {
	PowerUp spawn.PowerUp
	Points  int
}

type EffectExpiredPayload struct {
	Kind spawn.PowerUpKind
}

// CrashPayload describes the terminal collision
type CrashPayload struct {
	Head   core.Cell // Head before the move
	Target core.Cell // Cell the head tried to enter
	Wall   bool      // False means self collision
}

type ModeChangedPayload struct {
	From core.Mode
	To   core.Mode
}

// LevelPayload carries level number and its base interval in milliseconds
type LevelPayload struct {
	Level          int
	BaseIntervalMs int64
}

// FireworkPayload locates one burst; Burst counts from 0
type FireworkPayload struct {
	Origin core.Cell
	Burst  int
}

type GhostStepPayload struct {
	Cell core.Cell
}

// SpawnDegradedPayload names the item placed on a possibly occupied cell
type SpawnDegradedPayload struct {
	Cell    core.Cell
	PowerUp bool
}

type CuePayload struct {
	Cue Cue
}
