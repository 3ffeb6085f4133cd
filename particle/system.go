package particle

import (
	"math"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/vmath"
)

// RNG is the random source for emission jitter
type RNG interface {
	Float64() float64
}

// System owns all live particles with bounded capacity
// When full, new particles overwrite existing slots in circular order
type System struct {
	particles []Particle
	capacity  int
	cursor    int
	rng       RNG
}

// New creates a system bounded at parameter.MaxParticles
func New(rng RNG) *System {
	return NewWithCapacity(rng, parameter.MaxParticles)
}

// NewWithCapacity creates a system with an explicit bound
func NewWithCapacity(rng RNG, capacity int) *System {
	if capacity < 1 {
		capacity = 1
	}
	return &System{
		particles: make([]Particle, 0, capacity),
		capacity:  capacity,
		rng:       rng,
	}
}

// Particles returns the live particle slice; callers must not retain it across Update
func (s *System) Particles() []Particle {
	return s.particles
}

func (s *System) Count() int {
	return len(s.particles)
}

// CountKind returns live particles of kind k
func (s *System) CountKind(k Kind) int {
	n := 0
	for i := range s.particles {
		if s.particles[i].Kind == k {
			n++
		}
	}
	return n
}

// Clear removes every particle
func (s *System) Clear() {
	s.particles = s.particles[:0]
	s.cursor = 0
}

// Retain drops every particle whose kind is not k
func (s *System) Retain(k Kind) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		if p.Kind == k {
			kept = append(kept, p)
		}
	}
	s.particles = kept
	s.cursor = 0
}

func (s *System) add(p Particle) {
	if len(s.particles) < s.capacity {
		s.particles = append(s.particles, p)
		return
	}
	s.particles[s.cursor] = p
	s.cursor = (s.cursor + 1) % s.capacity
}

// Update advances every particle by dt seconds and removes dead ones
func (s *System) Update(dt float64) {
	if dt <= 0 {
		return
	}

	live := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		if step(&p, dt) {
			live = append(live, p)
		}
	}
	// Clear vacated slots
	for i := len(live); i < len(s.particles); i++ {
		s.particles[i] = Particle{}
	}
	s.particles = live
	if s.cursor >= len(s.particles) {
		s.cursor = 0
	}
}

// step applies per-kind motion and decay, returning false when the particle dies
func step(p *Particle, dt float64) bool {
	switch p.Kind {
	case KindTrail:
		p.Life -= parameter.TrailDecayRate * dt

	case KindCrash:
		p.Vel.Y -= parameter.ParticleGravity * dt
		p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(p.Vel, dt))
		p.Rotation += p.Spin * dt
		if p.Pos.Y <= parameter.ParticleFloorY && p.Vel.Y < 0 && -p.Vel.Y > parameter.CrashBounceMinSpeed {
			p.Pos.Y = parameter.ParticleFloorY
			p.Vel.Y = -p.Vel.Y * parameter.CrashRestitution
			p.Vel.X *= parameter.CrashRestitution
			p.Vel.Z *= parameter.CrashRestitution
			p.Spin *= parameter.CrashRestitution
			p.bounced = true
		}
		p.Life -= parameter.CrashDecayRate * dt
		if p.bounced && p.Pos.Y < parameter.ParticleFloorCull {
			return false
		}

	case KindConfetti:
		p.Vel.Y -= parameter.ParticleGravity * parameter.ConfettiGravity * dt
		p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(p.Vel, dt))
		p.Rotation += p.Spin * dt
		p.Life -= parameter.ConfettiDecayRate * dt
		if p.Pos.Y < parameter.ParticleFloorCull {
			return false
		}

	case KindFirework:
		p.Vel = vmath.V3FScale(p.Vel, 1-vmath.ExpApproach(parameter.FireworkDrag, dt))
		p.Vel.Y -= parameter.ParticleGravity * parameter.FireworkGravity * dt
		p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(p.Vel, dt))
		p.Life -= parameter.FireworkDecayRate * dt

	case KindGhostWisp:
		p.age += dt
		p.Pos.Y += parameter.GhostWispRise * dt
		p.Pos.X = p.origin.X + parameter.GhostWispSway*math.Sin(parameter.GhostWispSwayFreq*p.age+p.phase)
		p.Life -= parameter.GhostWispDecayRate * dt

	default:
		return false
	}
	return p.Life > 0
}

func cellPos(c core.Cell, y float64) vmath.Vec3F {
	return vmath.Vec3F{X: float64(c.X), Y: y, Z: float64(c.Z)}
}

func (s *System) spread(limit float64) float64 {
	return vmath.RandRange(s.rng.Float64(), -limit, limit)
}

// EmitTrail leaves a fading mark on the vacated tail cell
func (s *System) EmitTrail(c core.Cell) {
	s.add(Particle{Kind: KindTrail, Pos: cellPos(c, 0), Life: 1, Color: ColorTrail})
}

// EmitCrash scatters n debris pieces from c
func (s *System) EmitCrash(c core.Cell, n int) {
	origin := cellPos(c, 0.5)
	for i := 0; i < n; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := vmath.RandRange(s.rng.Float64(), parameter.CrashSpeedMin, parameter.CrashSpeedMax)
		up := vmath.RandRange(s.rng.Float64(), parameter.CrashUpSpeedMin, parameter.CrashUpSpeedMax)
		s.add(Particle{
			Kind:  KindCrash,
			Pos:   origin,
			Vel:   vmath.Vec3F{X: math.Cos(angle) * speed, Y: up, Z: math.Sin(angle) * speed},
			Life:  1,
			Spin:  s.spread(parameter.CrashSpinMax),
			Color: ColorDebris,
		})
	}
}

// EmitConfetti bursts colored flakes upward from c
func (s *System) EmitConfetti(c core.Cell, color Color) {
	origin := cellPos(c, 0.5)
	for i := 0; i < parameter.ConfettiCount; i++ {
		s.add(Particle{
			Kind: KindConfetti,
			Pos:  origin,
			Vel: vmath.Vec3F{
				X: s.spread(parameter.ConfettiSpeedMax),
				Y: parameter.ConfettiUpSpeed * (0.5 + s.rng.Float64()),
				Z: s.spread(parameter.ConfettiSpeedMax),
			},
			Life:  1,
			Spin:  s.spread(parameter.ConfettiSpinMax),
			Color: color,
		})
	}
}

// EmitFirework explodes a ring of sparks above origin
func (s *System) EmitFirework(origin core.Cell, burst int) {
	center := cellPos(origin, parameter.FireworkHeight)
	color := fireworkPalette[burst%len(fireworkPalette)]
	n := parameter.FireworkSparkCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		lift := s.spread(1)
		dir := vmath.V3FNormalize(vmath.Vec3F{X: math.Cos(angle), Y: lift, Z: math.Sin(angle)})
		s.add(Particle{
			Kind:  KindFirework,
			Pos:   center,
			Vel:   vmath.V3FScale(dir, parameter.FireworkSpeed),
			Life:  1,
			Color: color,
		})
	}
}

// EmitGhostWisp releases a rising wisp behind an invulnerable head
func (s *System) EmitGhostWisp(c core.Cell) {
	origin := cellPos(c, 0.3)
	s.add(Particle{
		Kind:   KindGhostWisp,
		Pos:    origin,
		Life:   1,
		Color:  ColorGhost,
		origin: origin,
		phase:  s.rng.Float64() * 2 * math.Pi,
	})
}

// EventTypes implements event.Handler
func (s *System) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTrail,
		event.EventFoodEaten,
		event.EventPowerUpEaten,
		event.EventCrash,
		event.EventFirework,
		event.EventGhostStep,
	}
}

// HandleEvent maps core events to emitters
func (s *System) HandleEvent(_ event.Frame, ev event.GameEvent) {
	switch ev.Type {
	case event.EventTrail:
		if p, ok := ev.Payload.(*event.TrailPayload); ok {
			s.EmitTrail(p.Cell)
		}
	case event.EventFoodEaten:
		if p, ok := ev.Payload.(*event.FoodEatenPayload); ok {
			s.EmitConfetti(p.Food.Cell, FoodColor(p.Food.Kind))
		}
	case event.EventPowerUpEaten:
		if p, ok := ev.Payload.(*event.PowerUpEatenPayload); ok {
			s.EmitConfetti(p.PowerUp.Cell, PowerUpColor(p.PowerUp.Kind))
		}
	case event.EventCrash:
		if p, ok := ev.Payload.(*event.CrashPayload); ok {
			// Only crash debris keeps animating after a collision
			s.Retain(KindCrash)
			s.EmitCrash(p.Head, parameter.CrashParticleCount)
		}
	case event.EventFirework:
		if p, ok := ev.Payload.(*event.FireworkPayload); ok {
			s.EmitFirework(p.Origin, p.Burst)
		}
	case event.EventGhostStep:
		if p, ok := ev.Payload.(*event.GhostStepPayload); ok {
			s.EmitGhostWisp(p.Cell)
		}
	}
}
