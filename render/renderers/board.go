package renderers

import (
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/render"
)

// BoardRenderer draws the playfield floor and its border
type BoardRenderer struct{}

func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

// Render implements SystemRenderer
func (r *BoardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := render.BoardSize(ctx.Snapshot.GridSize)
	x0, y0 := ctx.BoardX, ctx.BoardY

	buf.FillBg(x0+1, y0+1, w-2, h-2, render.RgbBoard)

	border := render.RgbBorder
	if ctx.Snapshot.Mode == engine.ModeGameOver {
		border = render.RgbGameOver
	}

	for x := x0 + 1; x < x0+w-1; x++ {
		buf.SetWithBg(x, y0, parameter.GlyphBorderH, border, render.RgbBackground)
		buf.SetWithBg(x, y0+h-1, parameter.GlyphBorderH, border, render.RgbBackground)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		buf.SetWithBg(x0, y, parameter.GlyphBorderV, border, render.RgbBackground)
		buf.SetWithBg(x0+w-1, y, parameter.GlyphBorderV, border, render.RgbBackground)
	}
	buf.SetWithBg(x0, y0, parameter.GlyphCornerTL, border, render.RgbBackground)
	buf.SetWithBg(x0+w-1, y0, parameter.GlyphCornerTR, border, render.RgbBackground)
	buf.SetWithBg(x0, y0+h-1, parameter.GlyphCornerBL, border, render.RgbBackground)
	buf.SetWithBg(x0+w-1, y0+h-1, parameter.GlyphCornerBR, border, render.RgbBackground)
}
