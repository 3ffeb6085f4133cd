// Package camera interpolates the view focus and screen shake once per frame
package camera

import (
	"math"

	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/vmath"
)

// Camera follows a target exponentially and carries a decaying shake
type Camera struct {
	position vmath.Vec3F
	target   vmath.Vec3F
	shake    float64
	elapsed  float64
}

func New() *Camera {
	return &Camera{}
}

// Follow sets the point the camera approaches
func (c *Camera) Follow(target vmath.Vec3F) {
	c.target = target
}

// Snap moves the camera onto its target immediately
func (c *Camera) Snap(target vmath.Vec3F) {
	c.target = target
	c.position = target
}

// Shake raises the shake magnitude to at least m
func (c *Camera) Shake(m float64) {
	if m > c.shake {
		c.shake = m
	}
}

// Update advances follow and shake by dt seconds
func (c *Camera) Update(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	c.position = vmath.V3FLerp(c.position, c.target, vmath.ExpApproach(parameter.CameraFollowRate, dt))

	c.shake *= 1 - vmath.ExpApproach(parameter.CameraShakeDecay, dt)
	if c.shake < parameter.CameraShakeEpsilon {
		c.shake = 0
	}
}

// Position returns the interpolated focus without shake
func (c *Camera) Position() vmath.Vec3F {
	return c.position
}

// ShakeMagnitude returns the current shake amplitude
func (c *Camera) ShakeMagnitude() float64 {
	return c.shake
}

// Offset returns the shake displacement on the XZ plane
func (c *Camera) Offset() vmath.Vec3F {
	if c.shake == 0 {
		return vmath.Vec3F{}
	}
	phase := parameter.CameraShakeFrequency * c.elapsed
	return vmath.Vec3F{
		X: c.shake * math.Sin(phase),
		Z: c.shake * math.Cos(phase*1.3),
	}
}

// Reset recenters and stops shaking
func (c *Camera) Reset() {
	*c = Camera{}
}

func (c *Camera) EventTypes() []event.EventType {
	return []event.EventType{event.EventCrash, event.EventLevelUp}
}

func (c *Camera) HandleEvent(_ event.Frame, ev event.GameEvent) {
	switch ev.Type {
	case event.EventCrash:
		c.Shake(parameter.CameraShakeCrash)
	case event.EventLevelUp:
		c.Shake(parameter.CameraShakeLevelUp)
	}
}
