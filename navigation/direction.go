// Package navigation defines grid headings and their geometric deltas
package navigation

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/light-cycle/core"
)

// Direction is a grid heading
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	None
)

var (
	ErrNoReverse  = errors.New("direction does not have a mapped reverse direction")
	ErrNoVelocity = errors.New("direction does not have an implemented velocity")
)

// Opposite returns the reverse heading; None is its own opposite
func (d Direction) Opposite() (Direction, error) {
	switch d {
	case North:
		return South, nil
	case South:
		return North, nil
	case East:
		return West, nil
	case West:
		return East, nil
	case None:
		return None, nil
	}
	return d, fmt.Errorf("%w: %d", ErrNoReverse, d)
}

// MustOpposite is Opposite for headings known to be valid
func (d Direction) MustOpposite() Direction {
	o, err := d.Opposite()
	if err != nil {
		panic(err)
	}
	return o
}

// Delta returns the offset of one body size in heading d
// North is negative Y since rows grow downward
func (d Direction) Delta(size core.Vec2) (core.Vec2, error) {
	switch d {
	case North:
		return core.Vec2{X: 0, Y: -size.Y}, nil
	case South:
		return core.Vec2{X: 0, Y: size.Y}, nil
	case East:
		return core.Vec2{X: size.X, Y: 0}, nil
	case West:
		return core.Vec2{X: -size.X, Y: 0}, nil
	case None:
		return core.Vec2{}, nil
	}
	return core.Vec2{}, fmt.Errorf("%w: %q", ErrNoVelocity, d.String())
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case None:
		return "none"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection maps a lowercase heading name to a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "up":
		return North, nil
	case "south", "down":
		return South, nil
	case "east", "right":
		return East, nil
	case "west", "left":
		return West, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}
