package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/core"
)

// Palette
var (
	RgbBackground = core.RGB{R: 10, G: 10, B: 20}
	RgbBorder     = core.RGB{R: 90, G: 110, B: 160}
	RgbStatusBar  = core.RGB{R: 200, G: 200, B: 210}
	RgbStatusDim  = core.RGB{R: 110, G: 110, B: 120}
	RgbOverlayFg  = core.RGB{R: 255, G: 255, B: 255}
	RgbOverlayBg  = core.RGB{R: 40, G: 40, B: 70}
	RgbPaused     = core.RGB{R: 255, G: 200, B: 0}
)

// PlayerColors is the default cycle color per designation
var PlayerColors = []core.RGB{
	{R: 0, G: 220, B: 255},  // Cyan
	{R: 255, G: 140, B: 0},  // Orange
	{R: 120, G: 255, B: 80}, // Green
	{R: 230, G: 60, B: 230}, // Magenta
}

// ColorMode selects how RGB is sent to the terminal
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorTrueColor
	Color256
)

// ParseColorMode maps "auto", "truecolor" and "256" to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "24bit":
		return ColorTrueColor, nil
	case "256":
		return Color256, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorTrueColor:
		return "truecolor"
	case Color256:
		return "256"
	}
	return "auto"
}

// Resolve picks a concrete mode for a screen reporting the given color count
func (m ColorMode) Resolve(colors int) ColorMode {
	if m != ColorAuto {
		return m
	}
	if colors >= 1<<24 {
		return ColorTrueColor
	}
	return Color256
}

// ToTcell converts c for the resolved mode
func ToTcell(c core.RGB, mode ColorMode) tcell.Color {
	if mode == Color256 {
		return tcell.PaletteColor(Index256(c))
	}
	return c.Tcell()
}

// Index256 maps c onto the xterm 6x6x6 color cube
func Index256(c core.RGB) int {
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}
