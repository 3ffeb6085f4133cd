package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/parameter"
)

// Synth builds short procedural sounds for cues
type Synth struct {
	rate   beep.SampleRate
	volume float64
}

// NewSynth creates a synth producing streams at rate, scaled by master volume
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	return &Synth{rate: rate, volume: volume}
}

// Rate returns the sample rate of generated streams
func (s *Synth) Rate() beep.SampleRate {
	return s.rate
}

// Cue returns a finite streamer for c
// Returns false for cues the synth has no sound for
func (s *Synth) Cue(c event.Cue) (beep.Streamer, bool) {
	var st beep.Streamer
	switch c {
	case event.CueEat:
		st = s.tone(660, parameter.EatSoundDuration, WaveSine, parameter.CueRelease)
	case event.CueEatCrunchy:
		st = beep.Mix(
			newVolume(s.tone(440, parameter.CrunchSoundDuration, WaveSquare, parameter.CueRelease), 0.5),
			newVolume(s.tone(0, parameter.CrunchSoundDuration, WaveNoise, parameter.CueRelease), 0.4),
		)
	case event.CueCrash:
		st = beep.Mix(
			newVolume(s.tone(90, parameter.CrashSoundDuration, WaveSaw, parameter.CrashRelease), 0.6),
			newVolume(s.tone(0, parameter.CrashSoundDuration, WaveNoise, parameter.CrashRelease), 0.5),
		)
	case event.CuePowerUp:
		st = s.arpeggio(parameter.PowerUpNoteDuration, 523.25, 659.25, 783.99)
	case event.CueLevelUp:
		st = s.arpeggio(parameter.LevelUpNoteDuration, 523.25, 659.25, 783.99, 1046.5)
	case event.CueBoostStart:
		sw := NewSweep(200, 900, parameter.BoostSoundDuration, WaveSaw, s.rate)
		st = newVolume(NewEnvelope(sw, parameter.BoostSoundDuration, parameter.CueAttack, parameter.CueRelease, s.rate), 0.6)
	case event.CuePause:
		st = s.arpeggio(parameter.PauseSoundDuration/2, 440, 330)
	case event.CueResume:
		st = s.arpeggio(parameter.PauseSoundDuration/2, 330, 440)
	case event.CueClick:
		st = s.tone(1200, parameter.ClickSoundDuration, WaveSquare, parameter.ClickSoundDuration/2)
	default:
		return nil, false
	}
	return newVolume(st, s.volume), true
}

// tone is a single enveloped note
func (s *Synth) tone(freq float64, d time.Duration, wave WaveType, release time.Duration) beep.Streamer {
	osc := NewOscillator(freq, d, wave, s.rate)
	return NewEnvelope(osc, d, parameter.CueAttack, release, s.rate)
}

// arpeggio plays notes back to back, each lasting d
func (s *Synth) arpeggio(d time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, s.tone(f, d, WaveSine, d/2))
	}
	return beep.Seq(notes...)
}
