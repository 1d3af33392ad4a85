package render

import (
	"time"

	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime time.Time
	IsPaused bool
	IsMuted  bool

	// Round state
	Phase     engine.GamePhase
	Round     int
	Winner    input.Designation
	HasWinner bool
	Scores    [input.MaxPlayers]int
	Players   int

	// Arena dimensions in cells
	ArenaWidth  int
	ArenaHeight int

	// CellWidth is terminal columns per arena cell
	CellWidth int

	// Screen position of arena cell (0, 0)
	OriginX int
	OriginY int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots world state and lays the arena out on the screen
// The framed arena plus status bar is centered; it is pinned to the top-left when it does not fit
func NewRenderContext(world *engine.World, screenWidth, screenHeight, cellWidth int) RenderContext {
	if cellWidth < 1 {
		cellWidth = 1
	}
	state := world.Resources.State
	arena := world.Resources.Arena
	phase, _ := state.Phase()
	winner, hasWinner := state.Winner()

	ctx := RenderContext{
		GameTime:     world.Resources.Time.GameTime,
		IsPaused:     state.Paused.Load(),
		IsMuted:      state.Muted.Load(),
		Phase:        phase,
		Round:        state.Round(),
		Winner:       winner,
		HasWinner:    hasWinner,
		Players:      world.Players.Count(),
		ArenaWidth:   arena.Width,
		ArenaHeight:  arena.Height,
		CellWidth:    cellWidth,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	for i := range ctx.Scores {
		ctx.Scores[i] = state.Score(input.Designation(i))
	}

	frameW, frameH := ctx.FrameSize()
	ctx.OriginX = max(0, (screenWidth-frameW)/2) + constants.BorderThickness
	ctx.OriginY = max(0, (screenHeight-frameH-constants.StatusBarHeight)/2) + constants.BorderThickness
	return ctx
}

// FrameSize returns the arena size on screen including the border
func (rc *RenderContext) FrameSize() (int, int) {
	return rc.ArenaWidth*rc.CellWidth + 2*constants.BorderThickness,
		rc.ArenaHeight + 2*constants.BorderThickness
}

// CellToScreen converts an arena cell to the screen column of its first glyph
// Returns visible=false for cells outside the arena or the screen
func (rc *RenderContext) CellToScreen(cx, cy int) (int, int, bool) {
	if cx < 0 || cy < 0 || cx >= rc.ArenaWidth || cy >= rc.ArenaHeight {
		return 0, 0, false
	}
	sx := rc.OriginX + cx*rc.CellWidth
	sy := rc.OriginY + cy
	visible := sx >= 0 && sx < rc.ScreenWidth && sy >= 0 && sy < rc.ScreenHeight
	return sx, sy, visible
}

// StatusRow returns the screen row of the status bar
func (rc *RenderContext) StatusRow() int {
	return rc.OriginY + rc.ArenaHeight + constants.BorderThickness
}
