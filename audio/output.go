package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNotInitialized is returned when the output device has not been opened
var ErrNotInitialized = errors.New("audio: output not initialized")

// Output receives streams for playback
// Locked runs fn while playback is held so live streamers can be mutated
type Output interface {
	Play(s beep.Streamer)
	Locked(fn func())
}

// SpeakerOutput plays through the system speaker via a single mixer
type SpeakerOutput struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewSpeakerOutput creates an unopened speaker output
func NewSpeakerOutput(rate beep.SampleRate) *SpeakerOutput {
	return &SpeakerOutput{
		mixer: &beep.Mixer{},
		rate:  rate,
	}
}

// Init opens the audio device and starts the mixer
func (o *SpeakerOutput) Init(buffer time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}
	if err := speaker.Init(o.rate, o.rate.N(buffer)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(o.mixer)
	o.initialized = true
	return nil
}

// Initialized reports whether the device is open
func (o *SpeakerOutput) Initialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}

// Play adds s to the mixer; dropped when the device is not open
func (o *SpeakerOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Locked runs fn under the speaker lock
func (o *SpeakerOutput) Locked(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

// Close stops all sounds and releases the device
func (o *SpeakerOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	o.initialized = false
	return nil
}

// NullOutput discards everything; used when no device is available
type NullOutput struct{}

func (NullOutput) Play(beep.Streamer) {}

func (NullOutput) Locked(fn func()) { fn() }
