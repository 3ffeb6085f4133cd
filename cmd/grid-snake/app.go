package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/logging"
	"github.com/lixenwraith/grid-snake/metrics"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/score"
)

type appDeps struct {
	log        logging.Logger
	loop       *engine.Loop
	renderer   *render.TerminalRenderer
	director   *audio.Director
	collector  *metrics.Collector // nil when metrics are off
	board      *score.Leaderboard
	translator *input.Translator
}

// app owns presentation state around the loop: name entry, leaderboard rank, mute
// Everything runs on the main goroutine
type app struct {
	appDeps

	name       input.NameEntry
	rank       int
	finalScore int
	lastMode   engine.Mode
}

func newApp(deps appDeps) *app {
	if deps.log == nil {
		deps.log = logging.Noop()
	}
	if deps.translator == nil {
		deps.translator = input.NewTranslator(nil)
	}
	return &app{appDeps: deps, lastMode: deps.loop.Game().Mode()}
}

// frame advances the simulation, feeds the collaborators and draws
func (a *app) frame() {
	a.loop.Frame()
	snap := a.loop.Snapshot()

	a.director.SetCadence(snap.Cadence.Active, snap.Cadence.Boosted)
	a.collector.Observe(snap)
	a.observeMode(snap)

	if a.renderer != nil {
		a.renderer.RenderFrame(a.renderer.Context(staticSnapshot(snap), a.overlay()))
	}
}

// observeMode opens name entry once per game over when the score places
func (a *app) observeMode(snap engine.Snapshot) {
	if snap.Mode == a.lastMode {
		return
	}
	prev := a.lastMode
	a.lastMode = snap.Mode

	switch {
	case snap.Mode == engine.ModeGameOver:
		a.rank = 0
		a.finalScore = snap.Score
		if a.board.Qualifies(snap.Score) {
			a.name.Begin()
		}
	case prev == engine.ModeGameOver:
		a.name.Cancel()
		a.rank = 0
	}
}

func (a *app) overlay() render.Overlay {
	return render.Overlay{
		Muted:       a.director.Muted(),
		Leaderboard: a.board.Entries(),
		NameActive:  a.name.Active(),
		Name:        a.name.Text(),
		Rank:        a.rank,
	}
}

// handleEvent translates one terminal event and reports whether to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleIntent(a.translator.FromKey(ev, a.name.Active()))
	case *tcell.EventMouse:
		if a.name.Active() {
			return false
		}
		hx, hy, ok := a.headOnScreen()
		if !ok {
			return false
		}
		return a.handleIntent(input.FromMouse(ev, hx, hy, parameter.CellWidth))
	case *tcell.EventResize:
		return a.handleIntent(input.Intent{Type: input.IntentResize})
	}
	return false
}

// handleIntent maps one intent onto the loop; rejected transitions are logged at debug
func (a *app) handleIntent(in input.Intent) bool {
	ctx := context.Background()
	mode := a.loop.Game().Mode()

	var err error
	switch in.Type {
	case input.IntentNone:
	case input.IntentDirection:
		a.loop.RequestDirection(in.Direction)
	case input.IntentStart:
		if mode == engine.ModeStart {
			err = a.loop.Start()
		}
	case input.IntentTogglePause:
		err = a.loop.TogglePause()
	case input.IntentToggleMute:
		muted := a.director.ToggleMute()
		a.log.Debug(ctx, "mute toggled", logging.Any("muted", muted))
	case input.IntentRetry:
		err = a.loop.Retry()
	case input.IntentNewGame:
		err = a.loop.NewRun()
	case input.IntentQuit:
		return true
	case input.IntentResize:
		if a.renderer != nil {
			a.renderer.Resize()
		}
	case input.IntentNameChar:
		a.name.Append(in.Char)
	case input.IntentNameBackspace:
		a.name.Backspace()
	case input.IntentNameSubmit:
		a.submitName()
	}

	if err != nil {
		a.log.Debug(ctx, "intent rejected", logging.String("intent", in.Type.String()), logging.String("mode", mode.String()), logging.Err(err))
	}
	return false
}

func (a *app) submitName() {
	if !a.name.Active() {
		return
	}
	rank, err := a.board.Submit(a.name.Submit(), a.finalScore)
	a.rank = rank
	if err != nil {
		a.log.Warn(context.Background(), "leaderboard save failed", logging.Err(err))
	}
}

// headOnScreen locates the head glyph for pointer steering
func (a *app) headOnScreen() (int, int, bool) {
	if a.renderer == nil {
		return 0, 0, false
	}
	snap := a.loop.Snapshot()
	if len(snap.Segments) == 0 {
		return 0, 0, false
	}
	rc := a.renderer.Context(staticSnapshot(snap), render.Overlay{})
	return rc.CellToScreen(snap.Segments[0].Cell)
}

// staticSnapshot serves an already captured snapshot
type staticSnapshot engine.Snapshot

func (s staticSnapshot) Snapshot() engine.Snapshot { return engine.Snapshot(s) }
