package render

import (
	"github.com/gdamore/tcell/v2"
)

// SystemRenderer draws one visual layer
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityBoard
	PriorityParticleUnder
	PriorityItems
	PrioritySnake
	PriorityParticle
	PriorityUI
	PriorityOverlay
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// TerminalRenderer composites registered layers into a buffer and flushes to a tcell screen
type TerminalRenderer struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (t *TerminalRenderer) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority, index: t.regCount}
	t.regCount++

	pos := len(t.renderers)
	for i, e := range t.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	t.renderers = append(t.renderers, rendererEntry{})
	copy(t.renderers[pos+1:], t.renderers[pos:])
	t.renderers[pos] = entry
}

// Len returns the number of registered layers
func (t *TerminalRenderer) Len() int {
	return len(t.renderers)
}

// Size returns the current screen size
func (t *TerminalRenderer) Size() (int, int) {
	return t.buffer.Bounds()
}

// Resize updates buffer dimensions and syncs the screen
func (t *TerminalRenderer) Resize() {
	w, h := t.screen.Size()
	t.buffer.Resize(w, h)
	t.screen.Sync()
}

// Buffer exposes the composited frame
func (t *TerminalRenderer) Buffer() *RenderBuffer {
	return t.buffer
}

// Context builds the render context for the current screen size
func (t *TerminalRenderer) Context(snap SnapshotSource, ov Overlay) RenderContext {
	w, h := t.buffer.Bounds()
	return NewRenderContext(snap.Snapshot(), ov, w, h)
}

// RenderFrame executes the pipeline: clear, render all, flush, show
func (t *TerminalRenderer) RenderFrame(ctx RenderContext) {
	t.buffer.Clear()

	for _, entry := range t.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, t.buffer)
	}

	t.buffer.FlushToScreen(t.screen)
}
