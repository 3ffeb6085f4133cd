package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/grid-snake/event"
)

// Director turns cue events into playback and drives the ambient cadence
// Mute state lives here rather than in the simulation
type Director struct {
	out     Output
	synth   *Synth
	cadence *Cadence
	ctrl    *beep.Ctrl
	muted   bool
	active  bool
	boosted bool
	played  int
}

// NewDirector attaches a paused cadence to out
func NewDirector(out Output, synth *Synth, cadence *Cadence) *Director {
	d := &Director{
		out:     out,
		synth:   synth,
		cadence: cadence,
		ctrl:    &beep.Ctrl{Streamer: cadence, Paused: true},
	}
	out.Play(d.ctrl)
	return d
}

func (d *Director) EventTypes() []event.EventType {
	return []event.EventType{event.EventCue}
}

func (d *Director) HandleEvent(_ event.Frame, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.CuePayload)
	if !ok {
		return
	}
	d.Play(p.Cue)
}

// Play emits the sound for c unless muted
func (d *Director) Play(c event.Cue) bool {
	if d.muted {
		return false
	}
	st, ok := d.synth.Cue(c)
	if !ok {
		return false
	}
	d.out.Play(st)
	d.played++
	return true
}

// SetCadence updates the ambient beat; it runs only while active and unmuted
func (d *Director) SetCadence(active, boosted bool) {
	if active == d.active && boosted == d.boosted {
		return
	}
	d.active = active
	d.boosted = boosted
	d.apply()
}

// ToggleMute flips mute and returns the new state
func (d *Director) ToggleMute() bool {
	d.SetMuted(!d.muted)
	return d.muted
}

// SetMuted sets mute explicitly
func (d *Director) SetMuted(muted bool) {
	if d.muted == muted {
		return
	}
	d.muted = muted
	d.apply()
}

func (d *Director) Muted() bool {
	return d.muted
}

// CadenceRunning reports whether the ambient beat is audible
func (d *Director) CadenceRunning() bool {
	return d.active && !d.muted
}

// Played returns the number of cues sent to the output
func (d *Director) Played() int {
	return d.played
}

func (d *Director) apply() {
	running := d.CadenceRunning()
	boosted := d.boosted
	d.out.Locked(func() {
		d.ctrl.Paused = !running
		d.cadence.SetBoosted(boosted)
	})
}
