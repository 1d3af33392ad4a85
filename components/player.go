package components

import (
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/navigation"
)

// PlayerComponent holds per-cycle steering and life state
type PlayerComponent struct {
	Designation input.Designation
	Speed       float64 // Cells per second

	// Movement keys in the order they were pressed, only while held
	Queue       *input.ListSet[input.KeyID]
	Binding     input.Binding
	MovementKey []input.KeyID

	Direction navigation.Direction // Current heading
	BufferDir navigation.Direction // Heading the buffer point looks toward

	// Trail generation handoff, written on reaching the move point
	UpdateTrail     bool
	DirectionsMatch bool
	NewTrailPos     core.Vec2

	// Trail segment entities in creation order; last is the one being stretched
	Trail []core.Entity

	Alive     bool
	Color     core.RGB
	deathDim  float64 // Color multiplier applied on death
	TrailOps  int     // Trail extend/create operations, for diagnostics
	CrashedBy CrashCause
}

// CrashCause records what ended a cycle
type CrashCause uint8

const (
	CrashNone CrashCause = iota
	CrashWall
	CrashTrail
	CrashCycle
)

func (c CrashCause) String() string {
	switch c {
	case CrashWall:
		return "wall"
	case CrashTrail:
		return "trail"
	case CrashCycle:
		return "cycle"
	}
	return "none"
}

// NewPlayerComponent creates a live player with no heading
func NewPlayerComponent(who input.Designation, binding input.Binding, speed float64, color core.RGB, dimPercent int) PlayerComponent {
	p := PlayerComponent{
		Designation: who,
		Speed:       speed,
		Queue:       input.NewListSet[input.KeyID](),
		Binding:     binding,
		MovementKey: binding.Keys(),
		Direction:   navigation.None,
		BufferDir:   navigation.None,
		Alive:       true,
		Color:       color,
	}
	p.SetDeathDimPercent(dimPercent)
	return p
}

// SetDeathDimPercent sets how much color is lost on death, clamped to [0, 100]
func (p *PlayerComponent) SetDeathDimPercent(percent int) {
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	p.deathDim = float64(100-percent) / 100
}

// DeathDimFactor is the multiplier applied to each color channel on death
func (p *PlayerComponent) DeathDimFactor() float64 {
	return p.deathDim
}

// LastTrail returns the newest trail segment
func (p *PlayerComponent) LastTrail() (core.Entity, bool) {
	if len(p.Trail) == 0 {
		return 0, false
	}
	return p.Trail[len(p.Trail)-1], true
}
