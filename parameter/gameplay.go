package parameter

import "time"

// Grid
const (
	// GridSize is the side length of the square playfield; cells span [-GridSize/2, GridSize/2)
	GridSize = 30

	// MinGridSize is the smallest accepted configured grid
	MinGridSize = 8
)

// Snake
const (
	// SnakeStartLength is the segment count at game start and on retry
	SnakeStartLength = 3

	// SnakeStartX/SnakeStartZ is the head cell at game start
	SnakeStartX = 0
	SnakeStartZ = 0

	// InputQueueCapacity bounds the number of buffered direction requests
	InputQueueCapacity = 3
)

// Tick Interval
const (
	// BaseTickInterval is the level 1 base interval between simulation ticks
	BaseTickInterval = 150 * time.Millisecond

	// LevelIntervalStep is subtracted from the base interval on each level-up
	LevelIntervalStep = 10 * time.Millisecond

	// FoodIntervalDecrement is subtracted from the interval on every food eaten
	FoodIntervalDecrement = 2 * time.Millisecond

	// MinTickInterval floors both the per-level base and the food-tightened interval
	MinTickInterval = 50 * time.Millisecond

	// BoostTickInterval overrides the effective interval while speed boost is active
	BoostTickInterval = 50 * time.Millisecond

	// MaxCountdownStep caps countdown decrement per tick as a multiple of the effective interval
	MaxCountdownStep = 2
)

// Level
const (
	// LevelDuration is the countdown length of each level
	LevelDuration = 60 * time.Second

	// FoodPerLevel multiplies the level number to get the live food target
	FoodPerLevel = 5
)
