package engine

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/event"
)

// TestTickInvariants plays seeded random games and checks per-tick properties
func TestTickInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGame(DefaultOptions(), rng, event.NewEventQueue(), nil)
		now := t0
		if err := g.Start(now); err != nil {
			t.Fatal(err)
		}
		s := g.State()
		prevApplied := s.Snake.Direction()
		// Overlap left by a ghost run may persist after expiry until the tail clears it
		ghosted := false

		for i := 0; i < 2000; i++ {
			switch g.Mode() {
			case ModeGameOver:
				now = now.Add(time.Second)
				if err := g.Retry(now); err != nil {
					t.Fatalf("seed %d: Retry: %v", seed, err)
				}
				prevApplied = s.Snake.Direction()
				ghosted = false
				continue
			case ModeLevelTransition:
				now = now.Add(3 * time.Second)
				g.Scheduler().Drain(now)
				continue
			}

			if rng.Intn(3) == 0 {
				g.RequestDirection(core.Direction(rng.Intn(4)))
			}

			oldHead := s.Snake.Head()
			oldLen := s.Snake.Len()
			now = now.Add(g.EffectiveInterval(now))

			res := mustStep(t, g, now)
			if res.Direction.IsOpposite(prevApplied) {
				t.Fatalf("seed %d tick %d: applied %v reverses %v", seed, i, res.Direction, prevApplied)
			}
			if res.Outcome == OutcomeCrashed {
				continue
			}
			prevApplied = res.Direction

			if s.Snake.Head() != oldHead.Add(res.Direction) {
				t.Fatalf("seed %d tick %d: head %v, want %v", seed, i, s.Snake.Head(), oldHead.Add(res.Direction))
			}

			switch res.Outcome {
			case OutcomeAte:
				if s.Snake.Len() != oldLen+1 {
					t.Fatalf("seed %d tick %d: food tick len %d, want %d", seed, i, s.Snake.Len(), oldLen+1)
				}
				if s.Mode == ModePlaying && s.Spawner.FoodCount() != s.Level.TargetFood() {
					t.Fatalf("seed %d tick %d: food %d, want %d", seed, i, s.Spawner.FoodCount(), s.Level.TargetFood())
				}
			default:
				if s.Snake.Len() != oldLen {
					t.Fatalf("seed %d tick %d: len changed %d -> %d", seed, i, oldLen, s.Snake.Len())
				}
			}

			if s.Effects.Invulnerable(now) {
				ghosted = true
			}
			if !ghosted && s.Snake.SelfIntersecting() {
				t.Fatalf("seed %d tick %d: overlapping segments while vulnerable", seed, i)
			}
			if s.Level.LevelBaseInterval() < 50*time.Millisecond || s.Level.BaseInterval() < 50*time.Millisecond {
				t.Fatalf("seed %d tick %d: interval below floor", seed, i)
			}
			g.Queue().Consume()
		}
	}
}
