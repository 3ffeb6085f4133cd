package engine

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/spawn"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const interval = 150 * time.Millisecond

// newTestGame starts a deterministic game with no random power-ups and drains start events
func newTestGame(t *testing.T, mutate func(*Options)) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.PowerUpChance = 0
	if mutate != nil {
		mutate(&opts)
	}
	g := NewGame(opts, rand.New(rand.NewSource(1)), event.NewEventQueue(), nil)
	if err := g.Start(t0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	g.Queue().Consume()
	return g
}

// placeFoodsAway replaces live food with n primaries on a far row plus extra placements
func placeFoodsAway(g *Game, n int, extra ...core.Cell) {
	sp := g.State().Spawner
	sp.Reset()
	for _, c := range extra {
		sp.PlaceFood(c, spawn.FoodPrimary)
	}
	for i := 0; len(sp.Foods()) < n; i++ {
		sp.PlaceFood(core.Cell{X: -14 + i, Z: 14}, spawn.FoodPrimary)
	}
}

func eventsOf(evs []event.GameEvent, typ event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func cuesOf(evs []event.GameEvent) []event.Cue {
	var out []event.Cue
	for _, ev := range eventsOf(evs, event.EventCue) {
		out = append(out, ev.Payload.(*event.CuePayload).Cue)
	}
	return out
}

func mustStep(t *testing.T, g *Game, now time.Time) TickResult {
	t.Helper()
	res, err := g.Step(now)
	if err != nil {
		t.Fatalf("Step(%v): %v", now.Sub(t0), err)
	}
	return res
}
