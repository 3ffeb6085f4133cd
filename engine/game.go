package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/logging"
	"github.com/lixenwraith/grid-snake/spawn"
)

// Game is the state machine and core tick over one SimulationState
// Single goroutine: all methods run on the frame loop
type Game struct {
	opts  Options
	state *SimulationState
	rng   spawn.RNG
	queue *event.EventQueue
	sched *Scheduler
	log   logging.Logger
	ctx   context.Context
}

// NewGame creates a game in START mode
// queue receives every emitted event; log may be nil
func NewGame(opts Options, rng spawn.RNG, queue *event.EventQueue, log logging.Logger) *Game {
	if log == nil {
		log = logging.Noop()
	}
	if queue == nil {
		queue = event.NewEventQueue()
	}
	return &Game{
		opts:  opts,
		state: newSimulationState(opts, rng),
		rng:   rng,
		queue: queue,
		sched: NewScheduler(),
		log:   log,
		ctx:   context.Background(),
	}
}

// State exposes the simulation context for read access
func (g *Game) State() *SimulationState {
	return g.state
}

func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Scheduler returns the transition schedule
func (g *Game) Scheduler() *Scheduler {
	return g.sched
}

// Queue returns the event queue the game emits into
func (g *Game) Queue() *event.EventQueue {
	return g.queue
}

// Options returns the tuning the game was created with
func (g *Game) Options() Options {
	return g.opts
}

func (g *Game) emit(t event.EventType, payload any, now time.Time) {
	g.queue.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      g.state.Ticks,
		Timestamp: now,
	})
}

func (g *Game) cue(c event.Cue, now time.Time) {
	g.emit(event.EventCue, &event.CuePayload{Cue: c}, now)
}

func (g *Game) setMode(to Mode, now time.Time) {
	from := g.state.Mode
	g.state.Mode = to
	g.emit(event.EventModeChanged, &event.ModeChangedPayload{From: from, To: to}, now)
	g.log.Info(g.ctx, "mode changed",
		logging.String("from", from.String()),
		logging.String("to", to.String()),
		logging.Int("level", g.state.Level.Level()),
		logging.Int("score", g.state.Score.Score()),
	)
}

// Start begins a fresh run from START or GAME_OVER
func (g *Game) Start(now time.Time) error {
	if g.state.Mode != ModeStart && g.state.Mode != ModeGameOver {
		return transitionError(g.state.Mode, ModePlaying)
	}

	s := g.state
	g.sched.Clear()
	s.Snake.Reset(g.opts.StartHead, g.opts.StartDirection, g.opts.StartLength)
	s.Input.Clear()
	s.Effects.Reset()
	s.Level.Reset()
	s.Score.Reset()
	s.Score.TakeSnapshot()
	s.Spawner.Reset()
	s.LastApplied = s.Snake.Direction()
	s.LastTick = now
	s.captureLevelStart()

	g.fillFood(now)
	g.setMode(ModePlaying, now)
	g.cue(event.CueClick, now)
	return nil
}

// Pause suspends ticking; valid only from PLAYING
func (g *Game) Pause(now time.Time) error {
	if g.state.Mode != ModePlaying {
		return transitionError(g.state.Mode, ModePaused)
	}
	g.setMode(ModePaused, now)
	g.cue(event.CuePause, now)
	return nil
}

// Resume continues from PAUSED
// now must be game time so the pause does not count toward the next tick
func (g *Game) Resume(now time.Time) error {
	if g.state.Mode != ModePaused {
		return transitionError(g.state.Mode, ModePlaying)
	}
	g.setMode(ModePlaying, now)
	g.cue(event.CueResume, now)
	return nil
}

// Retry restarts the current level from GAME_OVER
// Score rolls back to the level-start checkpoint and the level base interval is restored
func (g *Game) Retry(now time.Time) error {
	if g.state.Mode != ModeGameOver {
		return transitionError(g.state.Mode, ModePlaying)
	}

	s := g.state
	g.sched.Clear()
	s.Score.Rollback()
	s.Snake.Restore(s.LevelStartCells, s.LevelStartDirection)
	s.Input.Clear()
	s.Effects.Reset()
	s.Level.ResetTimer()
	s.Level.RestoreBaseInterval()
	s.Spawner.Reset()
	s.LastApplied = s.Snake.Direction()
	s.LastTick = now

	g.fillFood(now)
	g.log.Info(g.ctx, "level retry",
		logging.Int("level", s.Level.Level()),
		logging.Int("score", s.Score.Score()),
	)
	g.setMode(ModePlaying, now)
	g.cue(event.CueClick, now)
	return nil
}

// NewRun returns from GAME_OVER to START
func (g *Game) NewRun(now time.Time) error {
	if g.state.Mode != ModeGameOver {
		return transitionError(g.state.Mode, ModeStart)
	}
	g.sched.Clear()
	g.state.Input.Clear()
	g.setMode(ModeStart, now)
	return nil
}

// RequestDirection buffers a turn; false when not PLAYING or rejected by the queue
func (g *Game) RequestDirection(d core.Direction) bool {
	if g.state.Mode != ModePlaying {
		return false
	}
	return g.state.Input.Enqueue(d, g.state.Snake.Direction())
}

// EffectiveInterval is the boost interval while boosted, else the level interval
func (g *Game) EffectiveInterval(now time.Time) time.Duration {
	if g.state.Effects.Boosted(now) {
		return g.opts.BoostInterval
	}
	return g.state.Level.BaseInterval()
}

// Due reports whether a tick should fire at now
func (g *Game) Due(now time.Time) bool {
	if g.state.Mode != ModePlaying {
		return false
	}
	return now.Sub(g.state.LastTick) >= g.EffectiveInterval(now)
}

// fillFood tops live food up to the level target and emits spawn events
func (g *Game) fillFood(now time.Time) {
	s := g.state
	for _, p := range s.Spawner.Fill(s.Level.TargetFood(), s.Snake) {
		g.foodSpawned(p.Food, p.Degraded, now)
	}
}

func (g *Game) foodSpawned(f spawn.Food, degraded bool, now time.Time) {
	g.emit(event.EventFoodSpawned, &event.FoodSpawnedPayload{Food: f, Degraded: degraded}, now)
	if degraded {
		g.spawnDegraded(f.Cell, false, now)
	}
}

func (g *Game) spawnDegraded(c core.Cell, powerUp bool, now time.Time) {
	g.emit(event.EventSpawnDegraded, &event.SpawnDegradedPayload{Cell: c, PowerUp: powerUp}, now)
	g.log.Warn(g.ctx, "spawn placement degraded",
		logging.String("cell", c.String()),
		logging.Any("power_up", powerUp),
	)
}
