// Package metrics exposes gameplay counters and gauges in Prometheus format
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/event"
)

// Collector bundles Prometheus metrics for one game session
// Counters are fed from routed events, gauges from per-frame snapshots
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks           prometheus.Counter
	FoodEaten       *prometheus.CounterVec
	PowerUps        *prometheus.CounterVec
	Crashes         prometheus.Counter
	LevelUps        prometheus.Counter
	SpawnDegraded   prometheus.Counter
	ModeTransitions *prometheus.CounterVec
	TickInterval    prometheus.Histogram

	Score       prometheus.Gauge
	Level       prometheus.Gauge
	SnakeLength prometheus.Gauge
	Particles   prometheus.Gauge

	lastTicks uint64
}

// NewCollector registers metrics against reg, defaulting to the global registry when nil
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.Ticks, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grid_snake_ticks_total",
		Help: "Accepted simulation ticks.",
	}), "grid_snake_ticks_total"); err != nil {
		return nil, err
	}
	if c.FoodEaten, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_snake_food_eaten_total",
		Help: "Food consumed, labeled by kind.",
	}, []string{"kind"}), "grid_snake_food_eaten_total"); err != nil {
		return nil, err
	}
	if c.PowerUps, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_snake_powerups_total",
		Help: "Power-ups consumed, labeled by kind.",
	}, []string{"kind"}), "grid_snake_powerups_total"); err != nil {
		return nil, err
	}
	if c.Crashes, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grid_snake_crashes_total",
		Help: "Runs ended by collision.",
	}), "grid_snake_crashes_total"); err != nil {
		return nil, err
	}
	if c.LevelUps, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grid_snake_level_ups_total",
		Help: "Completed levels.",
	}), "grid_snake_level_ups_total"); err != nil {
		return nil, err
	}
	if c.SpawnDegraded, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grid_snake_spawn_degraded_total",
		Help: "Items placed after the retry budget ran out.",
	}), "grid_snake_spawn_degraded_total"); err != nil {
		return nil, err
	}
	if c.ModeTransitions, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_snake_mode_transitions_total",
		Help: "State machine transitions, labeled by target mode.",
	}, []string{"to"}), "grid_snake_mode_transitions_total"); err != nil {
		return nil, err
	}
	if c.TickInterval, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "grid_snake_tick_interval_seconds",
		Help:    "Effective tick interval sampled on each accepted tick.",
		Buckets: []float64{0.05, 0.06, 0.08, 0.1, 0.12, 0.14, 0.15},
	}), "grid_snake_tick_interval_seconds"); err != nil {
		return nil, err
	}

	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&c.Score, "grid_snake_score", "Current score."},
		{&c.Level, "grid_snake_level", "Current level."},
		{&c.SnakeLength, "grid_snake_snake_length", "Current snake length in cells."},
		{&c.Particles, "grid_snake_particles", "Live cosmetic particles."},
	}
	for _, g := range gauges {
		if *g.dst, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: g.name,
			Help: g.help,
		}), g.name); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodEaten,
		event.EventPowerUpEaten,
		event.EventCrash,
		event.EventLevelUp,
		event.EventSpawnDegraded,
		event.EventModeChanged,
	}
}

func (c *Collector) HandleEvent(_ event.Frame, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFoodEaten:
		if p, ok := ev.Payload.(*event.FoodEatenPayload); ok {
			c.FoodEaten.WithLabelValues(p.Food.Kind.String()).Inc()
		}
	case event.EventPowerUpEaten:
		if p, ok := ev.Payload.(*event.PowerUpEatenPayload); ok {
			c.PowerUps.WithLabelValues(p.PowerUp.Kind.String()).Inc()
		}
	case event.EventCrash:
		c.Crashes.Inc()
	case event.EventLevelUp:
		c.LevelUps.Inc()
	case event.EventSpawnDegraded:
		c.SpawnDegraded.Inc()
	case event.EventModeChanged:
		if p, ok := ev.Payload.(*event.ModeChangedPayload); ok {
			c.ModeTransitions.WithLabelValues(p.To.String()).Inc()
		}
	}
}

// Observe refreshes gauges from a snapshot and counts ticks since the last call
// A tick counter that moved backwards marks a new run and is counted from zero
func (c *Collector) Observe(snap engine.Snapshot) {
	if c == nil {
		return
	}
	if snap.Ticks < c.lastTicks {
		c.lastTicks = 0
	}
	if delta := snap.Ticks - c.lastTicks; delta > 0 {
		c.Ticks.Add(float64(delta))
		c.TickInterval.Observe(snap.EffectiveInterval.Seconds())
	}
	c.lastTicks = snap.Ticks

	c.Score.Set(float64(snap.Score))
	c.Level.Set(float64(snap.Level))
	c.SnakeLength.Set(float64(len(snap.Segments)))
	c.Particles.Set(float64(len(snap.Particles)))
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
