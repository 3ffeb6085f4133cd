// Package level owns the countdown, tick interval and difficulty of the current level
package level

import (
	"time"

	"github.com/lixenwraith/grid-snake/parameter"
)

// Settings tunes level progression
type Settings struct {
	Duration      time.Duration
	BaseInterval  time.Duration // Level 1 base interval
	LevelStep     time.Duration
	FoodDecrement time.Duration
	MinInterval   time.Duration
	FoodPerLevel  int
}

// DefaultSettings returns the canonical progression
func DefaultSettings() Settings {
	return Settings{
		Duration:      parameter.LevelDuration,
		BaseInterval:  parameter.BaseTickInterval,
		LevelStep:     parameter.LevelIntervalStep,
		FoodDecrement: parameter.FoodIntervalDecrement,
		MinInterval:   parameter.MinTickInterval,
		FoodPerLevel:  parameter.FoodPerLevel,
	}
}

// Controller tracks level number, countdown and tick interval
// The interval tightens per food within a level; levelBase is captured at level start
type Controller struct {
	settings Settings

	level     int
	countdown time.Duration
	interval  time.Duration
	levelBase time.Duration
}

// New creates a controller at level 1
func New(s Settings) *Controller {
	c := &Controller{settings: s}
	c.Reset()
	return c
}

// Reset returns to level 1 with a full countdown
func (c *Controller) Reset() {
	c.level = 1
	c.levelBase = c.floor(c.settings.BaseInterval)
	c.interval = c.levelBase
	c.countdown = c.settings.Duration
}

func (c *Controller) Level() int {
	return c.level
}

// Countdown returns time remaining in the level
func (c *Controller) Countdown() time.Duration {
	return c.countdown
}

// BaseInterval returns the current base tick interval including food tightening
func (c *Controller) BaseInterval() time.Duration {
	return c.interval
}

// LevelBaseInterval returns the interval captured at level start
func (c *Controller) LevelBaseInterval() time.Duration {
	return c.levelBase
}

// TargetFood returns the live food count to maintain
func (c *Controller) TargetFood() int {
	return c.level * c.settings.FoodPerLevel
}

// Duration returns the full level length
func (c *Controller) Duration() time.Duration {
	return c.settings.Duration
}

// Tick decrements the countdown by dt and reports the transition to zero
func (c *Controller) Tick(dt time.Duration) bool {
	if c.countdown <= 0 || dt <= 0 {
		return false
	}
	c.countdown -= dt
	if c.countdown <= 0 {
		c.countdown = 0
		return true
	}
	return false
}

// TightenForFood shortens the interval by the food decrement, floored
func (c *Controller) TightenForFood() time.Duration {
	c.interval = c.floor(c.interval - c.settings.FoodDecrement)
	return c.interval
}

// Advance moves to the next level: new base from the previous level base, full countdown
func (c *Controller) Advance() {
	c.level++
	c.levelBase = c.floor(c.levelBase - c.settings.LevelStep)
	c.interval = c.levelBase
	c.countdown = c.settings.Duration
}

// ResetTimer restores a full countdown without touching the level
func (c *Controller) ResetTimer() {
	c.countdown = c.settings.Duration
}

// RestoreBaseInterval discards within-level tightening
func (c *Controller) RestoreBaseInterval() {
	c.interval = c.levelBase
}

func (c *Controller) floor(d time.Duration) time.Duration {
	if d < c.settings.MinInterval {
		return c.settings.MinInterval
	}
	return d
}
