package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after stalls so cycles never skip a cell boundary check
	MaxFrameDelta = 50 * time.Millisecond

	// RoundOverDelay is how long the result stays on screen before the next round
	RoundOverDelay = 3 * time.Second

	// EventChannelSize buffers terminal events between the poll goroutine and the loop
	EventChannelSize = 64
)

// System Priorities (lower runs first)
const (
	PriorityInput     = 10
	PriorityMovement  = 20
	PriorityCollision = 30
	PriorityRound     = 40
)
