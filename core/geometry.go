package core

import (
	"fmt"
	"math"
)

// Entity is a unique identifier for an entity
type Entity uint64

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Vec2 is a continuous 2D position or size in cell units
// Y grows downward (screen coordinates)
type Vec2 struct {
	X, Y float64
}

// Epsilon is the tolerance used for position equality and overlap tests
const Epsilon = 1e-9

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Equal reports whether v and o are within Epsilon on both axes
func (v Vec2) Equal(o Vec2) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}

// Round returns the nearest grid point
func (v Vec2) Round() Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// MoveTowards moves current toward target by at most maxDelta
// Lands exactly on target when the remaining distance is within reach
func MoveTowards(current, target Vec2, maxDelta float64) Vec2 {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Scale(maxDelta / dist))
}

// Rect is an axis-aligned rectangle described by its center and full size
type Rect struct {
	Center Vec2
	Size   Vec2
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 {
	return Vec2{X: r.Center.X - r.Size.X/2, Y: r.Center.Y - r.Size.Y/2}
}

// Max returns the bottom-right corner
func (r Rect) Max() Vec2 {
	return Vec2{X: r.Center.X + r.Size.X/2, Y: r.Center.Y + r.Size.Y/2}
}

// Overlaps reports strict overlap; rectangles sharing only an edge do not overlap
func (r Rect) Overlaps(o Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	return rMin.X < oMax.X-Epsilon && oMin.X < rMax.X-Epsilon &&
		rMin.Y < oMax.Y-Epsilon && oMin.Y < rMax.Y-Epsilon
}

// Cells returns the grid cells whose center lies inside the rectangle
func (r Rect) Cells() []Point {
	rMin, rMax := r.Min(), r.Max()
	x0 := int(math.Ceil(rMin.X - Epsilon))
	x1 := int(math.Floor(rMax.X + Epsilon))
	y0 := int(math.Ceil(rMin.Y - Epsilon))
	y1 := int(math.Floor(rMax.Y + Epsilon))
	if x1 < x0 || y1 < y0 {
		return nil
	}
	cells := make([]Point, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
