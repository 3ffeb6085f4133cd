package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/logging"
	"github.com/lixenwraith/grid-snake/spawn"
)

// Outcome classifies what one accepted tick did
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomePowerUp
	OutcomeCrashed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomePowerUp:
		return "power_up"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// TickResult reports one accepted tick
type TickResult struct {
	Outcome      Outcome
	Direction    core.Direction // Applied direction
	Head         core.Cell      // Head after the tick, or the attempted cell on crash
	Wall         bool           // Crash into the boundary
	TimerExpired bool
}

// Step executes one accepted core tick at game time now
func (g *Game) Step(now time.Time) (TickResult, error) {
	s := g.state
	if s.Mode != ModePlaying {
		return TickResult{}, ErrNotPlaying
	}

	// Countdown decrement is the measured delta, capped so a stalled frame cannot skip a level
	interval := g.EffectiveInterval(now)
	dt := now.Sub(s.LastTick)
	if limit := interval * time.Duration(g.opts.MaxCountdownStep); g.opts.MaxCountdownStep > 0 && dt > limit {
		dt = limit
	}
	if dt < 0 {
		dt = 0
	}
	s.LastTick = now
	s.Ticks++

	for _, k := range s.Effects.Expired(now) {
		g.emit(event.EventEffectExpired, &event.EffectExpiredPayload{Kind: k}, now)
	}

	// 1. Apply one buffered turn
	if d, ok := s.Input.Dequeue(); ok {
		s.Snake.SetDirection(d)
	}
	dir := s.Snake.Direction()

	// 2. Next head
	head := s.Snake.Head()
	next := head.Add(dir)

	// 3. Wall
	if !s.World.Contains(next) {
		return g.crash(head, next, dir, true, now), nil
	}

	// 4. Self, whole pre-move body
	invulnerable := s.Effects.Invulnerable(now)
	if !invulnerable && s.Snake.Contains(next) {
		return g.crash(head, next, dir, false, now), nil
	}
	s.LastApplied = dir

	// 6. Consume or move, food before power-up on a shared cell
	res := TickResult{Direction: dir, Head: next}
	if food, ok := s.Spawner.FoodAt(next); ok {
		res.Outcome = OutcomeAte
		s.Snake.Advance(next, true)
		g.eatFood(food, now)
	} else if pu, ok := s.Spawner.PowerUpAt(next); ok {
		res.Outcome = OutcomePowerUp
		s.Snake.Advance(next, false)
		g.eatPowerUp(pu, now)
	} else {
		res.Outcome = OutcomeMoved
		if vacated, ok := s.Snake.Advance(next, false); ok {
			g.emit(event.EventTrail, &event.TrailPayload{Cell: vacated}, now)
		}
	}

	if invulnerable {
		g.emit(event.EventGhostStep, &event.GhostStepPayload{Cell: head}, now)
	}

	// 7. Countdown
	if s.Level.Tick(dt) {
		res.TimerExpired = true
		g.onTimerExpired(now)
	}
	return res, nil
}

func (g *Game) eatFood(food spawn.Food, now time.Time) {
	s := g.state
	s.Spawner.RemoveFood(food.ID)
	total := s.Score.Add(food.Kind.Value())
	s.Level.TightenForFood()

	g.emit(event.EventFoodEaten, &event.FoodEatenPayload{Food: food, Score: total}, now)
	if food.Kind == spawn.FoodSecondary {
		g.cue(event.CueEatCrunchy, now)
	} else {
		g.cue(event.CueEat, now)
	}

	// Replenish before the tick ends
	g.fillFood(now)
	if pu, spawned, degraded := s.Spawner.MaybeSpawnPowerUp(s.Snake); spawned {
		g.emit(event.EventPowerUpSpawned, &event.PowerUpSpawnedPayload{PowerUp: pu, Degraded: degraded}, now)
		if degraded {
			g.spawnDegraded(pu.Cell, true, now)
		}
	}
}

func (g *Game) eatPowerUp(pu spawn.PowerUp, now time.Time) {
	s := g.state
	s.Spawner.ClearPowerUp()
	applied := s.Effects.Apply(pu.Kind, now)
	s.Score.Add(applied.Points)

	g.emit(event.EventPowerUpEaten, &event.PowerUpEatenPayload{PowerUp: pu, Points: applied.Points}, now)
	if pu.Kind == spawn.PowerUpSpeedBoost {
		g.cue(event.CueBoostStart, now)
	} else {
		g.cue(event.CuePowerUp, now)
	}
}

// crash ends the run; Snake and Spawner freeze in their pre-move state
func (g *Game) crash(head, target core.Cell, dir core.Direction, wall bool, now time.Time) TickResult {
	g.state.Input.Clear()
	g.emit(event.EventCrash, &event.CrashPayload{Head: head, Target: target, Wall: wall}, now)
	g.cue(event.CueCrash, now)
	g.setMode(ModeGameOver, now)
	return TickResult{Outcome: OutcomeCrashed, Direction: dir, Head: target, Wall: wall}
}

// onTimerExpired enters LEVEL_TRANSITION and schedules fireworks and the level advance
func (g *Game) onTimerExpired(now time.Time) {
	s := g.state
	g.emit(event.EventLevelTimerExpired, &event.LevelPayload{
		Level:          s.Level.Level(),
		BaseIntervalMs: s.Level.BaseInterval().Milliseconds(),
	}, now)
	s.Input.Clear()
	g.setMode(ModeLevelTransition, now)

	for i := 0; i < g.opts.FireworkBursts; i++ {
		burst := i
		origin := s.World.RandomCell(g.rng)
		g.sched.After(now, time.Duration(i)*g.opts.FireworkSpacing, func(at time.Time) {
			if g.state.Mode != ModeLevelTransition {
				return
			}
			g.emit(event.EventFirework, &event.FireworkPayload{Origin: origin, Burst: burst}, at)
		})
	}
	g.sched.After(now, g.opts.TransitionDuration, func(at time.Time) {
		if g.state.Mode != ModeLevelTransition {
			return
		}
		g.advanceLevel(at)
	})
}

// advanceLevel finishes the transition and returns to PLAYING
func (g *Game) advanceLevel(now time.Time) {
	s := g.state
	s.Level.Advance()
	s.Score.TakeSnapshot()
	s.captureLevelStart()
	s.LastTick = now
	g.fillFood(now)

	g.emit(event.EventLevelUp, &event.LevelPayload{
		Level:          s.Level.Level(),
		BaseIntervalMs: s.Level.BaseInterval().Milliseconds(),
	}, now)
	g.cue(event.CueLevelUp, now)
	g.log.Info(g.ctx, "level up",
		logging.Int("level", s.Level.Level()),
		logging.Duration("base_interval", s.Level.BaseInterval()),
		logging.Int("score", s.Score.Score()),
	)
	g.setMode(ModePlaying, now)
}
