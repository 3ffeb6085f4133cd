package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the per-frame delta fed to cosmetic systems after a stall
	MaxFrameDelta = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Level Transition Sequence
const (
	// LevelTransitionDuration is the delay between timer expiry and the level increment
	LevelTransitionDuration = 3 * time.Second

	// FireworkBurstCount is the number of firework bursts launched during a transition
	FireworkBurstCount = 4

	// FireworkBurstSpacing is the delay between consecutive firework bursts
	FireworkBurstSpacing = 600 * time.Millisecond
)
