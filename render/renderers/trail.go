package renderers

import (
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/render"
)

// TrailRenderer fills every cell covered by a visible trail segment
type TrailRenderer struct {
	world *engine.World
}

// NewTrailRenderer creates a trail renderer
func NewTrailRenderer(world *engine.World) *TrailRenderer {
	return &TrailRenderer{world: world}
}

// Render draws segments in creation order
func (r *TrailRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range r.world.Trails.All() {
		seg, ok := r.world.Trails.Get(e)
		if !ok || !seg.Visible {
			continue
		}

		glyph := constants.TrailGlyph
		if owner, ok := r.world.Players.Get(seg.Owner); ok && !owner.Alive {
			glyph = constants.DeadTrailGlyph
		}

		for _, cell := range seg.Bounds().Cells() {
			sx, sy, visible := ctx.CellToScreen(cell.X, cell.Y)
			if !visible {
				continue
			}
			for col := 0; col < ctx.CellWidth; col++ {
				buf.Set(sx+col, sy, glyph, seg.Color, render.RgbBackground)
			}
		}
	}
}
