package renderers

import (
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/navigation"
	"github.com/lixenwraith/light-cycle/render"
)

// PlayerRenderer draws each cycle head at its nearest cell
type PlayerRenderer struct {
	world *engine.World
}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer(world *engine.World) *PlayerRenderer {
	return &PlayerRenderer{world: world}
}

// HeadGlyph returns the glyph for a heading, or the wreck glyph when dead
func HeadGlyph(dir navigation.Direction, alive bool) rune {
	if !alive {
		return constants.HeadDead
	}
	switch dir {
	case navigation.North:
		return constants.HeadNorth
	case navigation.South:
		return constants.HeadSouth
	case navigation.East:
		return constants.HeadEast
	case navigation.West:
		return constants.HeadWest
	}
	return constants.HeadIdle
}

// Render draws heads over trails
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range r.world.Players.All() {
		player, ok := r.world.Players.Get(e)
		if !ok {
			continue
		}
		motion, ok := r.world.Motions.Get(e)
		if !ok {
			continue
		}

		cell := motion.Body.Round()
		sx, sy, visible := ctx.CellToScreen(cell.X, cell.Y)
		if !visible {
			continue
		}
		glyph := HeadGlyph(player.Direction, player.Alive)
		for col := 0; col < ctx.CellWidth; col++ {
			buf.Set(sx+col, sy, glyph, player.Color, render.RgbBackground)
			buf.SetBold(sx+col, sy)
		}
	}
}
