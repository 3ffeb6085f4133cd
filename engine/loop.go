package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/camera"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/vmath"
)

// FrameStats reports what one frame callback did
type FrameStats struct {
	Ticked     bool
	Tick       TickResult
	Scheduled  int // Scheduler actions run
	Dispatched int // Events routed
	Delta      time.Duration
}

// Loop is the per-frame scheduler tying the game to its cosmetic collaborators
//
// Frame order:
//  1. Drain scheduled actions against game time
//  2. At most one core tick, when PLAYING and the effective interval has elapsed
//  3. Dispatch queued events to handlers
//  4. Advance particles and camera by the real frame delta, in every mode
type Loop struct {
	game      *Game
	clock     *PausableClock
	router    *event.Router[event.Frame]
	particles *particle.System
	camera    *camera.Camera

	lastReal time.Time
	frames   uint64
}

// NewLoop wires game events to the particle system and camera
func NewLoop(game *Game, clock *PausableClock, particles *particle.System, cam *camera.Camera) *Loop {
	l := &Loop{
		game:      game,
		clock:     clock,
		router:    event.NewRouter[event.Frame](game.Queue()),
		particles: particles,
		camera:    cam,
		lastReal:  clock.RealTime(),
	}
	l.router.Register(particles)
	l.router.Register(cam)
	cam.Snap(cellVec(game.State().Snake.Head()))
	return l
}

// Register adds an event handler, typically audio or metrics
func (l *Loop) Register(h event.Handler[event.Frame]) {
	l.router.Register(h)
}

func (l *Loop) Game() *Game {
	return l.game
}

func (l *Loop) Clock() *PausableClock {
	return l.clock
}

func (l *Loop) Particles() *particle.System {
	return l.particles
}

func (l *Loop) Camera() *camera.Camera {
	return l.camera
}

// Frames returns the number of frames run
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one frame callback
func (l *Loop) Frame() FrameStats {
	wall := l.clock.RealTime()
	delta := wall.Sub(l.lastReal)
	l.lastReal = wall
	if delta < 0 {
		delta = 0
	}
	if delta > parameter.MaxFrameDelta {
		delta = parameter.MaxFrameDelta
	}
	l.frames++

	now := l.clock.Now()
	stats := FrameStats{Delta: delta}

	stats.Scheduled = l.game.Scheduler().Drain(now)

	if l.game.Due(now) {
		res, err := l.game.Step(now)
		if err == nil {
			stats.Ticked = true
			stats.Tick = res
		}
	}

	stats.Dispatched = l.router.DispatchAll(event.Frame{Now: now, Tick: l.game.State().Ticks})

	dt := delta.Seconds()
	l.camera.Follow(cellVec(l.game.State().Snake.Head()))
	l.particles.Update(dt)
	l.camera.Update(dt)
	return stats
}

// Snapshot returns the full render view at the current game time
func (l *Loop) Snapshot() Snapshot {
	snap := l.game.Snapshot(l.clock.Now())
	snap.CameraPosition = l.camera.Position()
	snap.CameraOffset = l.camera.Offset()
	snap.Particles = l.particles.Particles()
	return snap
}

// Start begins a new run
func (l *Loop) Start() error {
	if err := l.game.Start(l.clock.Now()); err != nil {
		return err
	}
	l.particles.Clear()
	l.camera.Snap(cellVec(l.game.State().Snake.Head()))
	return nil
}

// Pause freezes game time along with the mode change
func (l *Loop) Pause() error {
	if err := l.game.Pause(l.clock.Now()); err != nil {
		return err
	}
	l.clock.Pause()
	return nil
}

// Resume unfreezes game time, then returns to PLAYING
func (l *Loop) Resume() error {
	if l.game.Mode() != ModePaused {
		return transitionError(l.game.Mode(), ModePlaying)
	}
	l.clock.Resume()
	return l.game.Resume(l.clock.Now())
}

// TogglePause pauses when PLAYING and resumes when PAUSED
func (l *Loop) TogglePause() error {
	if l.game.Mode() == ModePaused {
		return l.Resume()
	}
	return l.Pause()
}

// Retry restarts the current level after GAME_OVER
func (l *Loop) Retry() error {
	if err := l.game.Retry(l.clock.Now()); err != nil {
		return err
	}
	l.particles.Clear()
	return nil
}

// NewRun returns to START after GAME_OVER
func (l *Loop) NewRun() error {
	return l.game.NewRun(l.clock.Now())
}

// RequestDirection forwards a turn request to the game
func (l *Loop) RequestDirection(d core.Direction) bool {
	return l.game.RequestDirection(d)
}

func cellVec(c core.Cell) vmath.Vec3F {
	return vmath.Vec3F{X: float64(c.X), Z: float64(c.Z)}
}
