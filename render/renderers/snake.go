package renderers

import (
	"math"
	"time"

	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/powerup"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/snake"
)

// SnakeRenderer draws segments by role, tinted by active effects
type SnakeRenderer struct{}

func NewSnakeRenderer() *SnakeRenderer {
	return &SnakeRenderer{}
}

// Render implements SystemRenderer
func (r *SnakeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	status := ctx.Snapshot.Status
	if status.Invulnerable && ghostBlinkOff(status) {
		return
	}

	// Draw tail first so the head wins on overlap
	segs := ctx.Snapshot.Segments
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		sx, sy, ok := ctx.CellToScreen(seg.Cell)
		if !ok || !ctx.InsideBoard(sx, sy) {
			continue
		}
		glyph, color := segmentLook(seg.Role, status)
		buf.SetWithBg(sx, sy, glyph, render.RgbStatusText, color)
		buf.SetWithBg(sx+1, sy, ' ', render.RgbStatusText, color)
	}
}

// segmentLook picks glyph and fill for a segment
func segmentLook(role snake.Role, status powerup.Status) (rune, render.RGB) {
	var glyph rune
	var color render.RGB
	switch role {
	case snake.RoleHead:
		glyph, color = parameter.GlyphHead, render.RgbHead
	case snake.RoleTail:
		glyph, color = parameter.GlyphTail, render.RgbTail
	default:
		glyph, color = parameter.GlyphBody, render.RgbBody
	}

	if status.Invulnerable {
		color = render.Lerp(color, render.RgbGhost, 0.7)
	}
	if status.Pulsing {
		color = render.Lerp(color, render.RgbBoostPeak, pulseLevel(status.PulseRemaining))
	} else if status.Boosted {
		color = render.Lerp(color, render.RgbSpeed, 0.3)
	}
	return glyph, color
}

// pulseLevel is a single swell over the pulse window, 0 at both ends
func pulseLevel(remaining time.Duration) float64 {
	t := 1 - remaining.Seconds()/parameter.PulseDuration.Seconds()
	return math.Sin(t * math.Pi)
}

// ghostBlinkOff hides the snake on alternate half-periods near expiry
func ghostBlinkOff(status powerup.Status) bool {
	rem := status.InvulnerableRemaining
	if rem > parameter.GhostBlinkThreshold {
		return false
	}
	phase := rem % parameter.GhostBlinkPeriod
	return phase < parameter.GhostBlinkPeriod/2
}
