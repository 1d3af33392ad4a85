package renderers

import (
	"fmt"

	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/render"
)

// OverlayRenderer shows the round result or pause notice centered on the arena
type OverlayRenderer struct{}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Message returns the overlay lines for the context, nil when nothing is shown
func (r *OverlayRenderer) Message(ctx render.RenderContext) []string {
	switch {
	case ctx.Phase == engine.PhaseRoundOver:
		result := constants.DrawText
		if ctx.HasWinner {
			result = fmt.Sprintf("%s WINS", ctx.Winner)
		}
		return []string{fmt.Sprintf("ROUND %d", ctx.Round), result, "r next round"}
	case ctx.IsPaused:
		return []string{"PAUSED", "p resume"}
	case ctx.Phase == engine.PhaseReady:
		return []string{"READY", constants.HelpText}
	}
	return nil
}

// Render draws a padded box with the message lines
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := r.Message(ctx)
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2

	arenaW := ctx.ArenaWidth * ctx.CellWidth
	startX := ctx.OriginX + (arenaW-boxW)/2
	startY := ctx.OriginY + (ctx.ArenaHeight-boxH)/2

	buf.Fill(startX, startY, boxW, boxH, ' ', render.RgbOverlayFg, render.RgbOverlayBg)
	for i, l := range lines {
		x := startX + (boxW-len([]rune(l)))/2
		buf.SetString(x, startY+1+i, l, render.RgbOverlayFg, render.RgbOverlayBg)
	}
}
