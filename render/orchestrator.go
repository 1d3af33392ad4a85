package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	mode      ColorMode
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		mode:      mode.Resolve(screen.Colors()),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RendererCount returns the number of registered renderers
func (o *RenderOrchestrator) RendererCount() int {
	return len(o.renderers)
}

// Mode returns the resolved color mode
func (o *RenderOrchestrator) Mode() ColorMode {
	return o.mode
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the compositor of the last frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, world *engine.World) {
	world.RunSafe(func() {
		o.buffer.Clear()

		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, o.buffer)
		}
	})

	o.buffer.FlushToScreen(o.screen, o.mode)
	o.screen.Show()
}
