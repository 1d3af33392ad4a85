package components

import "github.com/lixenwraith/light-cycle/core"

// TrailSegmentComponent is one straight run of a cycle's trail
// Center and Scale describe the covered rectangle in cells
type TrailSegmentComponent struct {
	Owner core.Entity
	Order int

	Center core.Vec2
	Scale  core.Vec2
	Color  core.RGB

	Visible         bool
	ColliderEnabled bool
	IgnoreOwner     bool // Owner passes through; set on the newest segment only
}

// Bounds returns the covered rectangle
func (t TrailSegmentComponent) Bounds() core.Rect {
	return core.Rect{Center: t.Center, Size: t.Scale}
}

// CollidesWith reports whether the segment can hit the given cycle entity
func (t TrailSegmentComponent) CollidesWith(e core.Entity) bool {
	if !t.ColliderEnabled {
		return false
	}
	return !(t.IgnoreOwner && e == t.Owner)
}
