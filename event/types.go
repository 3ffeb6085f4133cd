// Package event carries simulation events from the core to cosmetic collaborators
package event

import (
	"time"
)

// EventType is the closed set of core events
type EventType int

const (
	// EventTrail marks the cell vacated by the tail on a plain move
	// Trigger: core tick without food | Consumer: particle.System | Payload: *TrailPayload
	EventTrail EventType = iota

	// EventFoodEaten signals food consumption and growth
	// Trigger: core tick | Consumer: particle.System, metrics | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventFoodSpawned signals a new live food item
	// Trigger: replenishment, level start | Consumer: renderer | Payload: *FoodSpawnedPayload
	EventFoodSpawned

	// EventPowerUpSpawned signals the live power-up appearing
	// Payload: *PowerUpSpawnedPayload
	EventPowerUpSpawned

	// EventPowerUpEaten signals power-up consumption
	// Trigger: core tick | Consumer: particle.System, metrics | Payload: *PowerUpEatenPayload
	EventPowerUpEaten

	// EventEffectExpired signals a timed status effect ending
	// Trigger: Game.Step expiry check | Payload: *EffectExpiredPayload
	EventEffectExpired

	// EventCrash signals wall or self collision ending the run
	// Consumer: particle.System (debris), camera (shake), metrics | Payload: *CrashPayload
	EventCrash

	// EventModeChanged signals a state machine transition
	// Payload: *ModeChangedPayload
	EventModeChanged

	// EventLevelTimerExpired signals the countdown reaching zero
	// Trigger: core tick step 7 | Payload: *LevelPayload
	EventLevelTimerExpired

	// EventFirework requests one firework burst
	// Trigger: transition schedule | Consumer: particle.System | Payload: *FireworkPayload
	EventFirework

	// EventLevelUp signals the level increment at transition end
	// Consumer: camera, metrics | Payload: *LevelPayload
	EventLevelUp

	// EventGhostStep marks a head move while invulnerable
	// Consumer: particle.System (wisp) | Payload: *GhostStepPayload
	EventGhostStep

	// EventSpawnDegraded signals placement accepted after retry budget exhaustion
	// Consumer: metrics | Payload: *SpawnDegradedPayload
	EventSpawnDegraded

	// EventCue requests a discrete audio cue
	// Consumer: audio.Director | Payload: *CuePayload
	EventCue

	eventTypeCount
)

var eventTypeNames = [...]string{
	EventTrail:             "Trail",
	EventFoodEaten:         "FoodEaten",
	EventFoodSpawned:       "FoodSpawned",
	EventPowerUpSpawned:    "PowerUpSpawned",
	EventPowerUpEaten:      "PowerUpEaten",
	EventEffectExpired:     "EffectExpired",
	EventCrash:             "Crash",
	EventModeChanged:       "ModeChanged",
	EventLevelTimerExpired: "LevelTimerExpired",
	EventFirework:          "Firework",
	EventLevelUp:           "LevelUp",
	EventGhostStep:         "GhostStep",
	EventSpawnDegraded:     "SpawnDegraded",
	EventCue:               "Cue",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventTypeNames[t]
}

// GameEvent is one queued event
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Accepted tick counter at emission
	Timestamp time.Time
}

// Frame is the dispatch context passed to handlers
type Frame struct {
	Now  time.Time
	Tick uint64
}
