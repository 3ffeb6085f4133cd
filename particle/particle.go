// Package particle animates cosmetic effects emitted in response to core events
// Nothing here is read back by the simulation
package particle

import (
	"github.com/lixenwraith/grid-snake/vmath"
)

// Kind is the closed set of particle variants
type Kind uint8

const (
	KindTrail Kind = iota
	KindCrash
	KindConfetti
	KindFirework
	KindGhostWisp
)

func (k Kind) String() string {
	switch k {
	case KindTrail:
		return "trail"
	case KindCrash:
		return "crash"
	case KindConfetti:
		return "confetti"
	case KindFirework:
		return "firework"
	case KindGhostWisp:
		return "ghost_wisp"
	default:
		return "unknown"
	}
}

// Particle is one ephemeral effect entity in world space
type Particle struct {
	Kind     Kind
	Pos      vmath.Vec3F
	Vel      vmath.Vec3F
	Life     float64 // Normalized, 1 at spawn, removed at <= 0
	Rotation float64 // Radians
	Spin     float64 // Radians per second
	Color    Color

	origin  vmath.Vec3F // Wisp sway anchor
	phase   float64
	age     float64
	bounced bool
}

// Bounced reports whether crash debris has touched the floor
func (p *Particle) Bounced() bool {
	return p.bounced
}
