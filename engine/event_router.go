package engine

// EventHandler processes specific event types
type EventHandler interface {
	HandleEvent(world *World, event GameEvent)
	EventTypes() []EventType
}

// EventRouter fans queued events out to registered handlers
// Dispatch is single-threaded and runs after World.Update each frame,
// handlers for one event run in registration order before the next event
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them, returns the count
// Events pushed by handlers are delivered on the next call
func (r *EventRouter) DispatchAll(world *World) int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(world, ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
