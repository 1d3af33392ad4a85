package renderers

import (
	"fmt"

	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/render"
)

// StatusBarRenderer draws round, scores and toggles under the arena
type StatusBarRenderer struct {
	world *engine.World
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	return &StatusBarRenderer{world: world}
}

// Render draws the status line left-aligned with the arena frame
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.StatusRow()
	x := ctx.OriginX - constants.BorderThickness
	bg := render.RgbBackground

	x = buf.SetString(x, y, fmt.Sprintf("R%d ", ctx.Round), render.RgbStatusBar, bg)

	colors := r.playerColors()
	for i := 0; i < ctx.Players && i < input.MaxPlayers; i++ {
		who := input.Designation(i)
		fg := render.RgbStatusBar
		if c, ok := colors[who]; ok {
			fg = c
		}
		x = buf.SetString(x, y, fmt.Sprintf(" %s %d", who, ctx.Scores[i]), fg, bg)
	}

	x = buf.SetString(x, y, "  "+ctx.Phase.String(), render.RgbStatusDim, bg)
	if ctx.IsPaused {
		x = buf.SetString(x+1, y, constants.PausedText, render.RgbBackground, render.RgbPaused)
	}
	if ctx.IsMuted {
		buf.SetString(x+1, y, constants.MutedText, render.RgbBackground, render.RgbStatusDim)
	}
}

func (r *StatusBarRenderer) playerColors() map[input.Designation]core.RGB {
	colors := make(map[input.Designation]core.RGB, input.MaxPlayers)
	for _, e := range r.world.Players.All() {
		if p, ok := r.world.Players.Get(e); ok {
			colors[p.Designation] = p.Color
		}
	}
	return colors
}
