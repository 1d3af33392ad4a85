package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/navigation"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPlayerTurned signals a heading change at a cell boundary
	// Trigger: MovementSystem | Payload: *TurnPayload
	EventPlayerTurned EventType = iota

	// EventTrailCreated signals a new trail segment
	// Trigger: TrailSystem | Payload: *TrailPayload
	EventTrailCreated

	// EventTrailExtended signals the last segment was stretched
	// Trigger: TrailSystem | Payload: *TrailPayload
	EventTrailExtended

	// EventPlayerCrashed signals a cycle died
	// Trigger: CollisionSystem | Payload: *CrashPayload
	EventPlayerCrashed

	// EventRoundStarted signals the first movement of a round
	// Trigger: RoundSystem | Payload: nil
	EventRoundStarted

	// EventRoundOver signals the end of a round
	// Trigger: RoundSystem | Payload: *RoundOverPayload
	EventRoundOver
)

func (t EventType) String() string {
	switch t {
	case EventPlayerTurned:
		return "PlayerTurned"
	case EventTrailCreated:
		return "TrailCreated"
	case EventTrailExtended:
		return "TrailExtended"
	case EventPlayerCrashed:
		return "PlayerCrashed"
	case EventRoundStarted:
		return "RoundStarted"
	case EventRoundOver:
		return "RoundOver"
	}
	return "Unknown"
}

// GameEvent is a queued notification between systems
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// TurnPayload carries a heading change
type TurnPayload struct {
	Player core.Entity
	From   navigation.Direction
	To     navigation.Direction
	At     core.Vec2
}

// TrailPayload carries a trail segment change
type TrailPayload struct {
	Player  core.Entity
	Segment core.Entity
	Op      int
	At      core.Vec2
}

// CrashPayload carries a death
type CrashPayload struct {
	Player core.Entity
	Cause  components.CrashCause
	At     core.Vec2
}

// RoundOverPayload carries the round result; Winner is 0 on a draw
type RoundOverPayload struct {
	Round  int
	Winner core.Entity
}

// EventQueueSize must be a power of two
const (
	EventQueueSize  = 256
	eventBufferMask = EventQueueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Push may be called from any goroutine, Consume only from the frame loop
// Overflow: oldest events are overwritten
type EventQueue struct {
	events    [EventQueueSize]GameEvent
	published [EventQueueSize]atomic.Bool // True once the slot is fully written
	head      atomic.Uint64               // Read index
	tail      atomic.Uint64               // Write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & eventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // After the write

			currentHead := eq.head.Load()
			if nextTail-currentHead > EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > EventQueueSize {
			available = EventQueueSize
			currentHead = currentTail - EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & eventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete
			}
			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(currentHead, currentHead+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > EventQueueSize {
		return EventQueueSize
	}
	return diff
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType EventType, payload any) {
	w.Resources.Events.Push(GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
