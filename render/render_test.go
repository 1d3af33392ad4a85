package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRenderBufferSetAndClear(t *testing.T) {
	buf := NewRenderBuffer(4, 3)
	buf.Set(1, 1, 'x', RgbBorder, RgbBackground)
	buf.Set(10, 10, 'y', RgbBorder, RgbBackground) // dropped

	if c := buf.Get(1, 1); c.Rune != 'x' || c.Fg != RgbBorder {
		t.Errorf("Expected 'x' with border color, got %q %v", c.Rune, c.Fg)
	}
	next := buf.SetString(0, 2, "abc", RgbStatusBar, RgbBackground)
	if next != 3 || buf.Get(2, 2).Rune != 'c' {
		t.Errorf("Expected string written up to column 3, got %d %q", next, buf.Get(2, 2).Rune)
	}

	buf.SetFg(1, 1, 'z', RgbPaused)
	if c := buf.Get(1, 1); c.Rune != 'z' || c.Bg != RgbBackground {
		t.Errorf("Expected fg-only update to keep background, got %+v", c)
	}

	buf.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := buf.Get(x, y); c != emptyCell {
				t.Errorf("Expected empty cell at (%d,%d), got %+v", x, y, c)
			}
		}
	}

	buf.Resize(2, 2)
	if w, h := buf.Size(); w != 2 || h != 2 {
		t.Errorf("Expected 2x2 after resize, got %dx%d", w, h)
	}
}

func TestColorModes(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorMode
		ok       bool
	}{
		{"auto", ColorAuto, true},
		{"", ColorAuto, true},
		{"truecolor", ColorTrueColor, true},
		{"256", Color256, true},
		{"16", ColorAuto, false},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err == nil) != tt.ok || got != tt.expected {
			t.Errorf("ParseColorMode(%q): expected %v ok=%v, got %v err=%v", tt.input, tt.expected, tt.ok, got, err)
		}
	}

	if ColorAuto.Resolve(1<<24) != ColorTrueColor {
		t.Error("Expected auto to resolve to truecolor on 24-bit screens")
	}
	if ColorAuto.Resolve(256) != Color256 {
		t.Error("Expected auto to resolve to 256 on palette screens")
	}
	if Color256.Resolve(1<<24) != Color256 {
		t.Error("Expected explicit mode to be kept")
	}

	if idx := Index256(core.RGBBlack); idx != 16 {
		t.Errorf("Expected black at 16, got %d", idx)
	}
	if idx := Index256(core.RGBWhite); idx != 231 {
		t.Errorf("Expected white at 231, got %d", idx)
	}
}

func TestRenderContextLayout(t *testing.T) {
	world := engine.NewWorld()
	world.Resources.Arena.Width = 10
	world.Resources.Arena.Height = 5

	ctx := NewRenderContext(world, 80, 24, 2)
	// Frame is 22x7, status bar 1 row
	if ctx.OriginX != (80-22)/2+1 {
		t.Errorf("Expected origin x %d, got %d", (80-22)/2+1, ctx.OriginX)
	}
	if ctx.OriginY != (24-7-1)/2+1 {
		t.Errorf("Expected origin y %d, got %d", (24-7-1)/2+1, ctx.OriginY)
	}

	sx, sy, ok := ctx.CellToScreen(3, 2)
	if !ok || sx != ctx.OriginX+6 || sy != ctx.OriginY+2 {
		t.Errorf("Expected (%d,%d), got (%d,%d) ok=%v", ctx.OriginX+6, ctx.OriginY+2, sx, sy, ok)
	}
	if _, _, ok := ctx.CellToScreen(10, 0); ok {
		t.Error("Expected cell outside arena to be invisible")
	}
	if ctx.StatusRow() != ctx.OriginY+5+1 {
		t.Errorf("Expected status row below frame, got %d", ctx.StatusRow())
	}

	// Arena larger than screen pins to the corner
	small := NewRenderContext(world, 5, 3, 2)
	if small.OriginX != 1 || small.OriginY != 1 {
		t.Errorf("Expected pinned origin (1,1), got (%d,%d)", small.OriginX, small.OriginY)
	}
}

type stampRenderer struct {
	r       rune
	x       int
	visible bool
}

func (s *stampRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	buf.Set(s.x, 0, s.r, RgbStatusBar, RgbBackground)
}

func (s *stampRenderer) IsVisible() bool { return s.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newSimScreen(t, 10, 2)
	o := NewRenderOrchestrator(screen, ColorTrueColor)
	world := engine.NewWorld()

	o.Register(&stampRenderer{r: 'b', x: 0, visible: true}, PriorityOverlay)
	o.Register(&stampRenderer{r: 'a', x: 0, visible: true}, PriorityBackground)
	o.Register(&stampRenderer{r: 'h', x: 1, visible: false}, PriorityOverlay)

	if o.RendererCount() != 3 {
		t.Errorf("Expected 3 renderers, got %d", o.RendererCount())
	}

	o.RenderFrame(NewRenderContext(world, 10, 2, 1), world)

	if r, _, _, _ := screen.GetContent(0, 0); r != 'b' {
		t.Errorf("Expected overlay to draw last, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r == 'h' {
		t.Error("Expected hidden renderer to be skipped")
	}
}
