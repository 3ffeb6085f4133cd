package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/render"
)

// HUDRenderer draws score, level, countdown and effect timers above the board
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	w, _ := render.BoardSize(snap.GridSize)
	x0 := ctx.BoardX
	y := ctx.BoardY - parameter.HUDHeight
	if y < 0 {
		y = 0
	}

	x := x0
	x = label(buf, x, y, "SCORE", fmt.Sprintf("%d", snap.Score))
	x = label(buf, x+2, y, "LEVEL", fmt.Sprintf("%d", snap.Level))
	x = label(buf, x+2, y, "TIME", formatCountdown(snap.Countdown))
	label(buf, x+2, y, "SPEED", fmt.Sprintf("%dms", snap.EffectiveInterval.Milliseconds()))

	// Mute indicator pinned to the right edge of the board
	muteText, muteBg := parameter.MuteOffText, render.RgbUnmuted
	if ctx.Overlay.Muted {
		muteText, muteBg = parameter.MuteOnText, render.RgbMuted
	}
	buf.TextBg(x0+w-len(muteText), y, muteText, render.RgbStatusText, muteBg)

	// Effect timers on the second row
	y++
	x = x0
	st := snap.Status
	if st.Invulnerable {
		x = badge(buf, x, y, fmt.Sprintf(" GHOST %.1fs ", st.InvulnerableRemaining.Seconds()), render.RgbGhost)
	}
	if st.Boosted {
		badge(buf, x, y, fmt.Sprintf(" BOOST %.1fs ", st.BoostRemaining.Seconds()), render.RgbSpeed)
	}
}

func label(buf *render.RenderBuffer, x, y int, name, value string) int {
	x = buf.Text(x, y, name+" ", render.RgbTextDim, tcell.AttrNone)
	return buf.Text(x, y, value, render.RgbText, tcell.AttrBold)
}

func badge(buf *render.RenderBuffer, x, y int, text string, bg render.RGB) int {
	return buf.TextBg(x, y, text, render.RgbStatusText, bg) + 1
}

// formatCountdown renders m:ss, rounding up so 0:00 appears only at expiry
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
