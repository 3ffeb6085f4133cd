package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/powerup"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/score"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
	"github.com/lixenwraith/grid-snake/vmath"
)

const screenW, screenH = 100, 40

func newFrame(t *testing.T) (tcell.SimulationScreen, *render.TerminalRenderer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(screenW, screenH)
	t.Cleanup(screen.Fini)

	tr := render.NewTerminalRenderer(screen)
	RegisterAll(tr)
	return screen, tr
}

func playingSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Mode:              engine.ModePlaying,
		GridSize:          30,
		GridMin:           -15,
		Level:             2,
		Countdown:         42*time.Second + 300*time.Millisecond,
		LevelDuration:     60 * time.Second,
		Score:             1250,
		EffectiveInterval: 136 * time.Millisecond,
		Segments: []snake.Segment{
			{Cell: core.Cell{X: 0, Z: 0}, Role: snake.RoleHead},
			{Cell: core.Cell{X: 0, Z: 1}, Role: snake.RoleBody},
			{Cell: core.Cell{X: 0, Z: 2}, Role: snake.RoleTail},
		},
		Foods: []spawn.Food{
			{ID: 1, Cell: core.Cell{X: 5, Z: 5}, Kind: spawn.FoodPrimary},
			{ID: 2, Cell: core.Cell{X: -5, Z: 5}, Kind: spawn.FoodSecondary},
		},
		HasPowerUp: true,
		PowerUp:    spawn.PowerUp{ID: 3, Cell: core.Cell{X: 7, Z: -7}, Kind: spawn.PowerUpSpeedBoost},
	}
}

// screenText returns row y as a string
func screenText(screen tcell.SimulationScreen, y int) string {
	var sb strings.Builder
	for x := 0; x < screenW; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.SimulationScreen, s string) bool {
	for y := 0; y < screenH; y++ {
		if strings.Contains(screenText(screen, y), s) {
			return true
		}
	}
	return false
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, ctx render.RenderContext, c core.Cell) (rune, tcell.Style) {
	t.Helper()
	sx, sy, ok := ctx.CellToScreen(c)
	if !ok {
		t.Fatalf("cell %v off screen", c)
	}
	r, _, style, _ := screen.GetContent(sx, sy)
	return r, style
}

func TestPlayingFrame(t *testing.T) {
	screen, tr := newFrame(t)
	snap := playingSnapshot()
	ctx := render.NewRenderContext(snap, render.Overlay{}, screenW, screenH)
	tr.RenderFrame(ctx)

	checks := []struct {
		cell core.Cell
		want rune
	}{
		{core.Cell{X: 0, Z: 0}, parameter.GlyphHead},
		{core.Cell{X: 0, Z: 1}, parameter.GlyphBody},
		{core.Cell{X: 0, Z: 2}, parameter.GlyphTail},
		{core.Cell{X: 5, Z: 5}, parameter.GlyphFood},
		{core.Cell{X: -5, Z: 5}, parameter.GlyphCrunchy},
		{core.Cell{X: 7, Z: -7}, parameter.GlyphSpeed},
	}
	for _, c := range checks {
		if r, _ := runeAt(t, screen, ctx, c.cell); r != c.want {
			t.Errorf("cell %v = %q, want %q", c.cell, r, c.want)
		}
	}

	r, _, _, _ := screen.GetContent(ctx.BoardX, ctx.BoardY)
	if r != parameter.GlyphCornerTL {
		t.Errorf("border corner = %q", r)
	}

	hud := screenText(screen, ctx.BoardY-parameter.HUDHeight)
	for _, want := range []string{"SCORE 1250", "LEVEL 2", "TIME 0:43", "SPEED 136ms", strings.TrimSpace(parameter.MuteOffText)} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if screenContains(screen, parameter.GameOverText) || screenContains(screen, parameter.PauseText) {
		t.Error("playing frame should have no overlay")
	}
}

func TestEffectStyling(t *testing.T) {
	screen, tr := newFrame(t)
	snap := playingSnapshot()
	snap.Status = powerup.Status{
		Invulnerable:          true,
		InvulnerableRemaining: 8 * time.Second,
		Boosted:               true,
		BoostRemaining:        5 * time.Second,
	}
	ctx := render.NewRenderContext(snap, render.Overlay{Muted: true}, screenW, screenH)
	tr.RenderFrame(ctx)

	_, style := runeAt(t, screen, ctx, core.Cell{X: 0, Z: 1})
	_, bg, _ := style.Decompose()
	if bg == render.RgbBody.Tcell() {
		t.Error("invulnerable body should be tinted")
	}

	effects := screenText(screen, ctx.BoardY-parameter.HUDHeight+1)
	if !strings.Contains(effects, "GHOST 8.0s") || !strings.Contains(effects, "BOOST 5.0s") {
		t.Errorf("effect row = %q", effects)
	}
	if !screenContains(screen, strings.TrimSpace(parameter.MuteOnText)) {
		t.Error("mute indicator missing")
	}
}

func TestGhostBlink(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		hidden    bool
	}{
		{5 * time.Second, false},
		{parameter.GhostBlinkThreshold, true},
		{parameter.GhostBlinkThreshold - parameter.GhostBlinkPeriod/2, false},
		{parameter.GhostBlinkPeriod / 4, true},
	}
	for _, tt := range tests {
		got := ghostBlinkOff(powerup.Status{Invulnerable: true, InvulnerableRemaining: tt.remaining})
		if got != tt.hidden {
			t.Errorf("remaining %v: hidden = %v, want %v", tt.remaining, got, tt.hidden)
		}
	}
}

func TestParticleLayers(t *testing.T) {
	screen, tr := newFrame(t)
	snap := playingSnapshot()
	snap.Particles = []particle.Particle{
		{Kind: particle.KindCrash, Pos: vmath.Vec3F{X: 10, Z: 10}, Life: 1, Color: particle.ColorDebris},
		{Kind: particle.KindTrail, Pos: vmath.Vec3F{X: -10, Z: -10}, Life: 1, Color: particle.ColorTrail},
		// Outside the board is clipped
		{Kind: particle.KindConfetti, Pos: vmath.Vec3F{X: 40, Z: 0}, Life: 1, Color: particle.ColorBonus},
	}
	ctx := render.NewRenderContext(snap, render.Overlay{}, screenW, screenH)
	tr.RenderFrame(ctx)

	if r, _ := runeAt(t, screen, ctx, core.Cell{X: 10, Z: 10}); r != parameter.GlyphDebris {
		t.Errorf("debris glyph = %q", r)
	}
	r, style := runeAt(t, screen, ctx, core.Cell{X: -10, Z: -10})
	_, bg, _ := style.Decompose()
	if r != ' ' || bg == render.RgbBoard.Tcell() {
		t.Errorf("trail should tint floor only, got %q bg %v", r, bg)
	}
	if screenContains(screen, string(parameter.GlyphConfetti)) {
		t.Error("out-of-board particle drawn")
	}
}

func TestGameOverOverlay(t *testing.T) {
	screen, tr := newFrame(t)
	snap := playingSnapshot()
	snap.Mode = engine.ModeGameOver

	ov := render.Overlay{
		Leaderboard: []score.Entry{
			{Name: "ada", Score: 3000},
			{Name: "bob", Score: 2000},
			{Name: "cy", Score: 1000},
			{Name: "dee", Score: 500},
		},
		NameActive: true,
		Name:       "zed",
	}
	tr.RenderFrame(render.NewRenderContext(snap, ov, screenW, screenH))

	for _, want := range []string{parameter.GameOverText, "score 1250", "HIGH SCORES", "1. ada", "3. cy", parameter.NameEntryPrompt + "zed_"} {
		if !screenContains(screen, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if screenContains(screen, "4. dee") {
		t.Error("only the top three entries are displayed")
	}
}

func TestModeOverlays(t *testing.T) {
	tests := []struct {
		mode engine.Mode
		want string
	}{
		{engine.ModeStart, parameter.StartPrompt},
		{engine.ModePaused, parameter.PauseText},
		{engine.ModeLevelTransition, "LEVEL 2 COMPLETE"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			screen, tr := newFrame(t)
			snap := playingSnapshot()
			snap.Mode = tt.mode
			tr.RenderFrame(render.NewRenderContext(snap, render.Overlay{}, screenW, screenH))
			if !screenContains(screen, tt.want) {
				t.Errorf("%s overlay missing %q", tt.mode, tt.want)
			}
		})
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{60 * time.Second, "1:00"},
		{59*time.Second + time.Millisecond, "1:00"},
		{59 * time.Second, "0:59"},
		{time.Millisecond, "0:01"},
		{0, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.d); got != tt.want {
			t.Errorf("formatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
