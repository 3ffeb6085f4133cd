package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	return c, reg
}

func send(c *Collector, typ event.EventType, payload any) {
	c.HandleEvent(event.Frame{}, event.GameEvent{Type: typ, Payload: payload})
}

func TestEventCounters(t *testing.T) {
	c, _ := newTestCollector(t)

	send(c, event.EventFoodEaten, &event.FoodEatenPayload{Food: spawn.Food{Kind: spawn.FoodPrimary}})
	send(c, event.EventFoodEaten, &event.FoodEatenPayload{Food: spawn.Food{Kind: spawn.FoodPrimary}})
	send(c, event.EventFoodEaten, &event.FoodEatenPayload{Food: spawn.Food{Kind: spawn.FoodSecondary}})
	send(c, event.EventPowerUpEaten, &event.PowerUpEatenPayload{PowerUp: spawn.PowerUp{Kind: spawn.PowerUpSpeedBoost}})
	send(c, event.EventCrash, &event.CrashPayload{})
	send(c, event.EventLevelUp, &event.LevelPayload{Level: 2})
	send(c, event.EventSpawnDegraded, &event.SpawnDegradedPayload{})
	send(c, event.EventModeChanged, &event.ModeChangedPayload{From: core.ModePlaying, To: core.ModeGameOver})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"food primary", testutil.ToFloat64(c.FoodEaten.WithLabelValues(spawn.FoodPrimary.String())), 2},
		{"food secondary", testutil.ToFloat64(c.FoodEaten.WithLabelValues(spawn.FoodSecondary.String())), 1},
		{"speed boost", testutil.ToFloat64(c.PowerUps.WithLabelValues("speed_boost")), 1},
		{"crashes", testutil.ToFloat64(c.Crashes), 1},
		{"level ups", testutil.ToFloat64(c.LevelUps), 1},
		{"degraded", testutil.ToFloat64(c.SpawnDegraded), 1},
		{"to game over", testutil.ToFloat64(c.ModeTransitions.WithLabelValues("GAME_OVER")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Wrong payload types are ignored
	send(c, event.EventFoodEaten, "food")
	if got := testutil.ToFloat64(c.FoodEaten.WithLabelValues(spawn.FoodPrimary.String())); got != 2 {
		t.Errorf("bad payload counted: %v", got)
	}
}

func TestObserveSnapshot(t *testing.T) {
	c, reg := newTestCollector(t)

	snap := engine.Snapshot{
		Ticks:             10,
		Score:             350,
		Level:             3,
		EffectiveInterval: 120 * time.Millisecond,
		Segments:          make([]snake.Segment, 7),
		Particles:         make([]particle.Particle, 42),
	}
	c.Observe(snap)
	c.Observe(snap) // No new ticks

	snap.Ticks = 15
	c.Observe(snap)

	if got := testutil.ToFloat64(c.Ticks); got != 15 {
		t.Errorf("ticks = %v, want 15", got)
	}
	if got := testutil.ToFloat64(c.Score); got != 350 {
		t.Errorf("score = %v", got)
	}
	if got := testutil.ToFloat64(c.Level); got != 3 {
		t.Errorf("level = %v", got)
	}
	if got := testutil.ToFloat64(c.SnakeLength); got != 7 {
		t.Errorf("snake length = %v", got)
	}
	if got := testutil.ToFloat64(c.Particles); got != 42 {
		t.Errorf("particles = %v", got)
	}
	if n := histogramSampleCount(t, reg, "grid_snake_tick_interval_seconds"); n != 2 {
		t.Errorf("tick interval samples = %d, want 2", n)
	}

	// New run resets the tick baseline
	snap.Ticks = 4
	c.Observe(snap)
	if got := testutil.ToFloat64(c.Ticks); got != 19 {
		t.Errorf("ticks after new run = %v, want 19", got)
	}
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	a.Crashes.Inc()
	if got := testutil.ToFloat64(b.Crashes); got != 1 {
		t.Errorf("second collector should share counters, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c, _ := newTestCollector(t)
	c.Observe(engine.Snapshot{Ticks: 1, Score: 100})
	send(c, event.EventCrash, &event.CrashPayload{})
	send(c, event.EventFoodEaten, &event.FoodEatenPayload{Food: spawn.Food{Kind: spawn.FoodPrimary}})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"grid_snake_ticks_total",
		"grid_snake_food_eaten_total",
		"grid_snake_crashes_total",
		"grid_snake_score 100",
		"grid_snake_level",
		"grid_snake_snake_length",
		"grid_snake_particles",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("expected %q in /metrics output", metric)
		}
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string) uint64 {
	t.Helper()
	families, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_HISTOGRAM {
			continue
		}
		if len(mf.Metric) > 0 {
			return mf.Metric[0].GetHistogram().GetSampleCount()
		}
	}
	return 0
}
