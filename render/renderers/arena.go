package renderers

import (
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/render"
)

// ArenaRenderer draws the playfield frame
type ArenaRenderer struct{}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render draws the border one cell outside the playable area
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	left := ctx.OriginX - constants.BorderThickness
	top := ctx.OriginY - constants.BorderThickness
	right := ctx.OriginX + ctx.ArenaWidth*ctx.CellWidth
	bottom := ctx.OriginY + ctx.ArenaHeight

	fg, bg := render.RgbBorder, render.RgbBackground
	for x := left + 1; x < right; x++ {
		buf.Set(x, top, constants.BorderHorizontal, fg, bg)
		buf.Set(x, bottom, constants.BorderHorizontal, fg, bg)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, constants.BorderVertical, fg, bg)
		buf.Set(right, y, constants.BorderVertical, fg, bg)
	}
	buf.Set(left, top, constants.BorderTopLeft, fg, bg)
	buf.Set(right, top, constants.BorderTopRight, fg, bg)
	buf.Set(left, bottom, constants.BorderBottomLeft, fg, bg)
	buf.Set(right, bottom, constants.BorderBottomRight, fg, bg)
}
