package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
)

// InputSystem feeds held movement keys into each player's queue and picks the buffered heading
type InputSystem struct {
	tracker *input.Tracker
}

// NewInputSystem creates an input system reading from tracker
func NewInputSystem(tracker *input.Tracker) *InputSystem {
	return &InputSystem{tracker: tracker}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update applies this frame's key transitions
func (s *InputSystem) Update(world *engine.World, dt time.Duration) {
	for _, e := range world.Players.All() {
		player, ok := world.Players.Get(e)
		if !ok || !player.Alive {
			continue
		}

		for _, key := range player.MovementKey {
			if s.tracker.KeyUp(key) {
				player.Queue.Remove(key)
			}
		}
		// A fresh press makes the key the newest even when it was already held
		for _, key := range s.tracker.Downs() {
			if _, bound := player.Binding[key]; bound {
				player.Queue.MoveToBack(key)
			}
		}

		key, ok := player.Queue.Last()
		if !ok {
			continue
		}
		dir, err := player.Binding.Direction(key)
		if err != nil {
			log.Printf("input %s: %v", player.Designation, err)
			continue
		}
		reverse, err := dir.Opposite()
		if err != nil {
			log.Printf("input %s: %v", player.Designation, err)
			continue
		}
		if reverse == player.Direction || dir == player.BufferDir {
			continue
		}

		world.Players.Update(e, func(p *components.PlayerComponent) {
			p.BufferDir = dir
		})
	}
}
