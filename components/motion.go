package components

import "github.com/lixenwraith/light-cycle/core"

// MotionComponent holds the grid-snapped movement anchors of a cycle
// Body glides toward MovePoint; BufferPoint sits one Size beyond MovePoint
// in the buffered heading and becomes the next MovePoint on arrival
type MotionComponent struct {
	Body        core.Vec2
	MovePoint   core.Vec2
	BufferPoint core.Vec2
	Size        core.Vec2
}

// NewMotionComponent places all anchors on the spawn cell
func NewMotionComponent(spawn, size core.Vec2) MotionComponent {
	return MotionComponent{
		Body:        spawn,
		MovePoint:   spawn,
		BufferPoint: spawn,
		Size:        size,
	}
}

// Bounds returns the body hitbox
func (m MotionComponent) Bounds() core.Rect {
	return core.Rect{Center: m.Body, Size: m.Size}
}

// Arrived reports whether the body sits on the move point
func (m MotionComponent) Arrived() bool {
	return m.Body.Distance(m.MovePoint) <= 0
}
