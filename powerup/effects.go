// Package powerup tracks timed status effects granted by consumed power-ups
package powerup

import (
	"time"

	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/spawn"
)

// Durations configures effect lengths
type Durations struct {
	Invulnerability time.Duration
	SpeedBoost      time.Duration
	Pulse           time.Duration
	BonusPoints     int
}

// DefaultDurations returns the canonical effect tuning
func DefaultDurations() Durations {
	return Durations{
		Invulnerability: parameter.InvulnerabilityDuration,
		SpeedBoost:      parameter.SpeedBoostDuration,
		Pulse:           parameter.PulseDuration,
		BonusPoints:     parameter.PowerUpBonusPoints,
	}
}

// Applied describes the outcome of consuming one power-up
type Applied struct {
	Kind   spawn.PowerUpKind
	Points int       // Score increment, bonus points only
	Until  time.Time // Expiry, timed effects only
}

// Status is the render-facing descriptor of active effects
type Status struct {
	Invulnerable          bool
	InvulnerableRemaining time.Duration
	Boosted               bool
	BoostRemaining        time.Duration
	Pulsing               bool
	PulseRemaining        time.Duration
}

// timer is one absolute-expiry effect; armed until its expiry has been reported
type timer struct {
	until time.Time
	armed bool
}

func (t *timer) active(now time.Time) bool {
	return t.armed && now.Before(t.until)
}

func (t *timer) remaining(now time.Time) time.Duration {
	if !t.active(now) {
		return 0
	}
	return t.until.Sub(now)
}

// Effects holds expiry timestamps against the game clock
type Effects struct {
	durations Durations

	invulnerable timer
	boost        timer
	pulse        timer
}

// New creates an effect tracker with the given durations
func New(d Durations) *Effects {
	return &Effects{durations: d}
}

// Apply consumes a power-up of kind k at now
// Re-applying an active effect restarts it from now
func (e *Effects) Apply(k spawn.PowerUpKind, now time.Time) Applied {
	switch k {
	case spawn.PowerUpBonusPoints:
		return Applied{Kind: k, Points: e.durations.BonusPoints}

	case spawn.PowerUpInvulnerability:
		e.invulnerable = timer{until: now.Add(e.durations.Invulnerability), armed: true}
		return Applied{Kind: k, Until: e.invulnerable.until}

	case spawn.PowerUpSpeedBoost:
		e.boost = timer{until: now.Add(e.durations.SpeedBoost), armed: true}
		e.pulse = timer{until: now.Add(e.durations.Pulse), armed: true}
		return Applied{Kind: k, Until: e.boost.until}

	default:
		return Applied{Kind: k}
	}
}

// Invulnerable reports now < invulnerability expiry
func (e *Effects) Invulnerable(now time.Time) bool {
	return e.invulnerable.active(now)
}

// Boosted reports now < speed boost expiry
func (e *Effects) Boosted(now time.Time) bool {
	return e.boost.active(now)
}

// Pulsing reports the cosmetic pulse window
func (e *Effects) Pulsing(now time.Time) bool {
	return e.pulse.active(now)
}

// Remaining returns time left on the timed effect of kind k
func (e *Effects) Remaining(k spawn.PowerUpKind, now time.Time) time.Duration {
	switch k {
	case spawn.PowerUpInvulnerability:
		return e.invulnerable.remaining(now)
	case spawn.PowerUpSpeedBoost:
		return e.boost.remaining(now)
	default:
		return 0
	}
}

// Status snapshots all effects at now
func (e *Effects) Status(now time.Time) Status {
	return Status{
		Invulnerable:          e.invulnerable.active(now),
		InvulnerableRemaining: e.invulnerable.remaining(now),
		Boosted:               e.boost.active(now),
		BoostRemaining:        e.boost.remaining(now),
		Pulsing:               e.pulse.active(now),
		PulseRemaining:        e.pulse.remaining(now),
	}
}

// Expired returns timed effects whose expiry passed since the previous call
// Each expiry is reported once; the pulse window is silent
func (e *Effects) Expired(now time.Time) []spawn.PowerUpKind {
	var out []spawn.PowerUpKind
	if e.invulnerable.armed && !now.Before(e.invulnerable.until) {
		e.invulnerable.armed = false
		out = append(out, spawn.PowerUpInvulnerability)
	}
	if e.boost.armed && !now.Before(e.boost.until) {
		e.boost.armed = false
		out = append(out, spawn.PowerUpSpeedBoost)
	}
	if e.pulse.armed && !now.Before(e.pulse.until) {
		e.pulse.armed = false
	}
	return out
}

// Reset clears every effect
func (e *Effects) Reset() {
	e.invulnerable = timer{}
	e.boost = timer{}
	e.pulse = timer{}
}
