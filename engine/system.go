package engine

import "time"

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Resettable is optionally implemented by systems holding per-round state
type Resettable interface {
	Reset()
}
