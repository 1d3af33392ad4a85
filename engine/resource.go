package engine

import (
	"time"

	"github.com/lixenwraith/light-cycle/core"
)

// Resources holds singleton game resources, accessed via World.Resources
type Resources struct {
	Time   *TimeResource
	Arena  *ArenaResource
	Events *EventQueue
	State  *GameState
}

// NewResources creates resources with empty defaults
// Arena dimensions are set by the game during setup
func NewResources() *Resources {
	return &Resources{
		Time:   &TimeResource{},
		Arena:  &ArenaResource{CellSize: core.Vec2{X: 1, Y: 1}},
		Events: NewEventQueue(),
		State:  NewGameState(),
	}
}

// TimeResource wraps time data for systems
// Updated by the frame loop at the start of each frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ArenaResource describes the playfield in cells
// Cell (x, y) is playable for 0 <= x < Width and 0 <= y < Height
type ArenaResource struct {
	Width    int
	Height   int
	CellSize core.Vec2
}

// Bounds returns the playable rectangle
func (a *ArenaResource) Bounds() core.Rect {
	w := float64(a.Width) * a.CellSize.X
	h := float64(a.Height) * a.CellSize.Y
	return core.Rect{
		Center: core.Vec2{X: w/2 - a.CellSize.X/2, Y: h/2 - a.CellSize.Y/2},
		Size:   core.Vec2{X: w, Y: h},
	}
}

// Contains reports whether r lies fully inside the arena
func (a *ArenaResource) Contains(r core.Rect) bool {
	b := a.Bounds()
	bMin, bMax := b.Min(), b.Max()
	rMin, rMax := r.Min(), r.Max()
	return rMin.X >= bMin.X-core.Epsilon && rMin.Y >= bMin.Y-core.Epsilon &&
		rMax.X <= bMax.X+core.Epsilon && rMax.Y <= bMax.Y+core.Epsilon
}
