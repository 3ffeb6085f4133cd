package render

import (
	"math"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/score"
	"github.com/lixenwraith/grid-snake/vmath"
)

// SnapshotSource yields the per-frame simulation view
type SnapshotSource interface {
	Snapshot() engine.Snapshot
}

// Overlay carries presentation state owned outside the simulation
type Overlay struct {
	Muted       bool
	Leaderboard []score.Entry
	NameActive  bool
	Name        string
	Rank        int // Rank of the last submitted score, 0 when none
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot engine.Snapshot
	Overlay  Overlay

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Top-left of the border in screen coordinates
	BoardX int
	BoardY int

	// Shake displacement applied to the playfield, in cells
	ShakeX int
	ShakeY int
}

// NewRenderContext centers the board on the screen below the HUD
func NewRenderContext(snap engine.Snapshot, ov Overlay, width, height int) RenderContext {
	boardW, boardH := BoardSize(snap.GridSize)

	bx := (width - boardW) / 2
	if bx < 0 {
		bx = 0
	}
	by := parameter.HUDHeight + (height-parameter.HUDHeight-boardH)/2
	if by < parameter.HUDHeight {
		by = parameter.HUDHeight
	}

	return RenderContext{
		Snapshot:     snap,
		Overlay:      ov,
		ScreenWidth:  width,
		ScreenHeight: height,
		BoardX:       bx,
		BoardY:       by,
		ShakeX:       int(math.Round(snap.CameraOffset.X * parameter.CellWidth)),
		ShakeY:       int(math.Round(snap.CameraOffset.Z)),
	}
}

// BoardSize returns the bordered playfield size in terminal cells
func BoardSize(gridSize int) (int, int) {
	return gridSize*parameter.CellWidth + 2, gridSize + 2
}

// CellToScreen maps a grid cell to the screen column/row of its left glyph
func (rc *RenderContext) CellToScreen(c core.Cell) (int, int, bool) {
	gx := c.X - rc.Snapshot.GridMin
	gz := c.Z - rc.Snapshot.GridMin
	if gx < 0 || gz < 0 || gx >= rc.Snapshot.GridSize || gz >= rc.Snapshot.GridSize {
		return 0, 0, false
	}
	sx := rc.BoardX + 1 + gx*parameter.CellWidth + rc.ShakeX
	sy := rc.BoardY + 1 + gz + rc.ShakeY
	return sx, sy, rc.onScreen(sx, sy)
}

// WorldToScreen projects a world position onto the XZ plane
// Height is ignored except for lifting the glyph one row per full unit
func (rc *RenderContext) WorldToScreen(p vmath.Vec3F) (int, int, bool) {
	gx := p.X - float64(rc.Snapshot.GridMin)
	gz := p.Z - float64(rc.Snapshot.GridMin) - math.Floor(p.Y)
	sx := rc.BoardX + 1 + int(math.Round(gx*parameter.CellWidth)) + rc.ShakeX
	sy := rc.BoardY + 1 + int(math.Round(gz)) + rc.ShakeY
	return sx, sy, rc.onScreen(sx, sy)
}

// InsideBoard reports whether a screen position is within the border interior
func (rc *RenderContext) InsideBoard(sx, sy int) bool {
	w, h := BoardSize(rc.Snapshot.GridSize)
	return sx > rc.BoardX && sx < rc.BoardX+w-1 && sy > rc.BoardY && sy < rc.BoardY+h-1
}

func (rc *RenderContext) onScreen(sx, sy int) bool {
	return sx >= 0 && sx < rc.ScreenWidth && sy >= 0 && sy < rc.ScreenHeight
}

// ScreenToCell maps a screen position back to the grid cell under it
func (rc *RenderContext) ScreenToCell(sx, sy int) (core.Cell, bool) {
	if !rc.InsideBoard(sx, sy) {
		return core.Cell{}, false
	}
	gx := (sx - rc.BoardX - 1) / parameter.CellWidth
	gz := sy - rc.BoardY - 1
	return core.Cell{X: gx + rc.Snapshot.GridMin, Z: gz + rc.Snapshot.GridMin}, true
}
