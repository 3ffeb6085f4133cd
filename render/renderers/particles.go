package renderers

import (
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/render"
)

// ParticleRenderer projects particles onto the board
// The ground layer draws trails beneath items, the air layer draws everything else above the snake
type ParticleRenderer struct {
	ground bool
}

// NewParticleRenderer creates the layer; ground selects trail-only rendering
func NewParticleRenderer(ground bool) *ParticleRenderer {
	return &ParticleRenderer{ground: ground}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Snapshot.Particles {
		p := &ctx.Snapshot.Particles[i]
		if (p.Kind == particle.KindTrail) != r.ground {
			continue
		}
		sx, sy, ok := ctx.WorldToScreen(p.Pos)
		if !ok || !ctx.InsideBoard(sx, sy) {
			continue
		}

		color := render.FromPacked(p.Color)
		life := p.Life
		if life > 1 {
			life = 1
		}

		switch p.Kind {
		case particle.KindTrail:
			buf.Set(sx, sy, 0, color, color, render.BlendAddBg, 0.35*life)
		case particle.KindCrash:
			buf.Set(sx, sy, parameter.GlyphDebris, color, color, render.BlendAlphaFg, life)
		case particle.KindConfetti:
			buf.Set(sx, sy, parameter.GlyphConfetti, color, color, render.BlendAlphaFg, life)
		case particle.KindFirework:
			buf.Set(sx, sy, parameter.GlyphSpark, color, color, render.BlendAlphaFg, life)
			buf.Set(sx, sy, 0, color, color, render.BlendAddBg, 0.2*life)
		case particle.KindGhostWisp:
			buf.Set(sx, sy, parameter.GlyphWisp, color, color, render.BlendAlphaFg, 0.8*life)
		}
	}
}
