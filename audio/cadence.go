package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/grid-snake/parameter"
)

// Cadence is an endless kick-drum pulse whose tempo follows the boosted flag
// Not safe for concurrent use; mutate under the output lock while playing
type Cadence struct {
	rate    beep.SampleRate
	volume  float64
	boosted bool
	pos     int
	phase   float64
}

// NewCadence creates a cadence at the normal tempo
func NewCadence(rate beep.SampleRate, volume float64) *Cadence {
	return &Cadence{rate: rate, volume: volume}
}

// SetBoosted switches between normal and boosted tempo
func (c *Cadence) SetBoosted(boosted bool) {
	c.boosted = boosted
}

// Boosted reports the current tempo selection
func (c *Cadence) Boosted() bool {
	return c.boosted
}

// Beat returns the current beat period
func (c *Cadence) Beat() time.Duration {
	if c.boosted {
		return parameter.CadenceBeatBoosted
	}
	return parameter.CadenceBeatNormal
}

func (c *Cadence) Stream(samples [][2]float64) (n int, ok bool) {
	beatLen := c.rate.N(c.Beat())
	kickLen := c.rate.N(parameter.CadenceKickLength)

	for i := range samples {
		if c.pos >= beatLen {
			c.pos = 0
			c.phase = 0
		}

		var val float64
		if c.pos < kickLen {
			t := float64(c.pos) / float64(kickLen)
			// Pitch drops from 120Hz to 50Hz across the kick
			freq := 50 + 70*(1-t)
			amp := (1 - t) * (1 - t)
			val = math.Sin(2*math.Pi*c.phase) * amp * c.volume
			c.phase += freq / float64(c.rate)
			c.phase -= math.Floor(c.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		c.pos++
	}
	return len(samples), true
}

func (c *Cadence) Err() error { return nil }
