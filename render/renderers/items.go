package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/spawn"
)

// ItemRenderer draws food and the active power-up
type ItemRenderer struct{}

func NewItemRenderer() *ItemRenderer {
	return &ItemRenderer{}
}

// Render implements SystemRenderer
func (r *ItemRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, f := range ctx.Snapshot.Foods {
		glyph := rune(parameter.GlyphFood)
		if f.Kind == spawn.FoodSecondary {
			glyph = parameter.GlyphCrunchy
		}
		drawItem(ctx, buf, f.Cell, glyph, render.FoodRGB(f.Kind), tcell.AttrBold)
	}

	if ctx.Snapshot.HasPowerUp {
		pu := ctx.Snapshot.PowerUp
		drawItem(ctx, buf, pu.Cell, powerUpGlyph(pu.Kind), render.PowerUpRGB(pu.Kind), tcell.AttrBold|tcell.AttrBlink)
	}
}

func drawItem(ctx render.RenderContext, buf *render.RenderBuffer, c core.Cell, glyph rune, color render.RGB, attrs tcell.AttrMask) {
	sx, sy, ok := ctx.CellToScreen(c)
	if !ok || !ctx.InsideBoard(sx, sy) {
		return
	}
	buf.SetFgOnly(sx, sy, glyph, color, attrs)
}

func powerUpGlyph(k spawn.PowerUpKind) rune {
	switch k {
	case spawn.PowerUpInvulnerability:
		return parameter.GlyphGhost
	case spawn.PowerUpSpeedBoost:
		return parameter.GlyphSpeed
	default:
		return parameter.GlyphBonus
	}
}
