// Package renderers holds the visual layers composited by render.TerminalRenderer
package renderers

import "github.com/lixenwraith/grid-snake/render"

// RegisterAll installs every layer at its priority
func RegisterAll(t *render.TerminalRenderer) {
	t.Register(NewBoardRenderer(), render.PriorityBoard)
	t.Register(NewParticleRenderer(true), render.PriorityParticleUnder)
	t.Register(NewItemRenderer(), render.PriorityItems)
	t.Register(NewSnakeRenderer(), render.PrioritySnake)
	t.Register(NewParticleRenderer(false), render.PriorityParticle)
	t.Register(NewHUDRenderer(), render.PriorityUI)
	t.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
