package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/core"
)

// Cell is one terminal character with explicit colors
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

var emptyCell = Cell{Rune: ' ', Fg: RgbStatusBar, Bg: RgbBackground}

// RenderBuffer is a frame compositor flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set replaces a cell, out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFg replaces rune and foreground, keeping the background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// SetBold marks a cell bold
func (b *RenderBuffer) SetBold(x, y int) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = true
	}
}

// SetString writes s left to right, returns the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg core.RGB) int {
	for _, r := range s {
		b.Set(x, y, r, fg, bg)
		x++
	}
	return x
}

// Fill paints a rectangle
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, fg, bg core.RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, fg, bg)
		}
	}
}

// Get returns the cell at x, y; out of bounds returns an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// FlushToScreen copies the buffer to screen using the given color mode
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(ToTcell(c.Fg, mode)).
				Background(ToTcell(c.Bg, mode)).
				Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
