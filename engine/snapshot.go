package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/powerup"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
	"github.com/lixenwraith/grid-snake/vmath"
)

// Cadence is the ambient audio signal derived from mode and boost
type Cadence struct {
	Active  bool
	Boosted bool
}

// Snapshot is the read-only view handed to rendering, audio and metrics each frame
type Snapshot struct {
	Mode  Mode
	Ticks uint64

	GridSize int
	GridMin  int

	Level           int
	Countdown       time.Duration
	LevelDuration   time.Duration
	Score           int
	LevelStartScore int

	EffectiveInterval time.Duration
	BaseInterval      time.Duration

	Segments   []snake.Segment
	Foods      []spawn.Food
	PowerUp    spawn.PowerUp
	HasPowerUp bool
	Status     powerup.Status

	CameraPosition vmath.Vec3F
	CameraOffset   vmath.Vec3F
	Particles      []particle.Particle

	Cadence Cadence
}

// Snapshot captures simulation state at game time now
// Camera and particle fields are filled by Loop
func (g *Game) Snapshot(now time.Time) Snapshot {
	s := g.state
	pu, hasPU := s.Spawner.PowerUp()
	status := s.Effects.Status(now)

	return Snapshot{
		Mode:              s.Mode,
		Ticks:             s.Ticks,
		GridSize:          s.World.Size(),
		GridMin:           s.World.Min(),
		Level:             s.Level.Level(),
		Countdown:         s.Level.Countdown(),
		LevelDuration:     s.Level.Duration(),
		Score:             s.Score.Score(),
		LevelStartScore:   s.Score.Snapshot(),
		EffectiveInterval: g.EffectiveInterval(now),
		BaseInterval:      s.Level.BaseInterval(),
		Segments:          s.Snake.Segments(),
		Foods:             s.Spawner.Foods(),
		PowerUp:           pu,
		HasPowerUp:        hasPU,
		Status:            status,
		Cadence: Cadence{
			Active:  s.Mode == ModePlaying,
			Boosted: status.Boosted,
		},
	}
}
