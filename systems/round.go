package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/navigation"
)

// RoundSystem drives the Ready/Running/RoundOver cycle and scoring
type RoundSystem struct {
	spawner *Spawner
	delay   time.Duration
}

// NewRoundSystem creates a round system; non-positive delay uses RoundOverDelay
func NewRoundSystem(spawner *Spawner, delay time.Duration) *RoundSystem {
	if delay <= 0 {
		delay = constants.RoundOverDelay
	}
	return &RoundSystem{spawner: spawner, delay: delay}
}

// Priority returns the system's priority
func (s *RoundSystem) Priority() int {
	return constants.PriorityRound
}

// Update advances the round phase
func (s *RoundSystem) Update(world *engine.World, dt time.Duration) {
	state := world.Resources.State
	now := world.Resources.Time.GameTime

	phase, started := state.Phase()

	if state.RestartRequested.Swap(false) {
		s.respawn(world)
		if phase == engine.PhaseRoundOver {
			state.NextRound(now)
		} else {
			state.SetPhase(engine.PhaseReady, now)
		}
		return
	}

	switch phase {
	case engine.PhaseReady:
		if s.anyMoving(world) {
			state.SetPhase(engine.PhaseRunning, now)
			world.PushEvent(engine.EventRoundStarted, nil)
		}

	case engine.PhaseRunning:
		total, alive, survivor := s.census(world)
		over := alive == 0 || (total > 1 && alive == 1)
		if !over {
			return
		}

		var winner core.Entity
		var who input.Designation
		hasWinner := total > 1 && alive == 1
		if hasWinner {
			winner = survivor
			if p, ok := world.Players.Get(survivor); ok {
				who = p.Designation
			}
		}
		state.EndRound(who, hasWinner, now)
		log.Printf("round %d over, winner %v (%v)", state.Round(), who, hasWinner)
		world.PushEvent(engine.EventRoundOver, &engine.RoundOverPayload{
			Round:  state.Round(),
			Winner: winner,
		})

	case engine.PhaseRoundOver:
		if now.Sub(started) >= s.delay {
			s.respawn(world)
			state.NextRound(now)
		}
	}
}

func (s *RoundSystem) respawn(world *engine.World) {
	if err := s.spawner.Spawn(world); err != nil {
		log.Printf("respawn: %v", err)
	}
}

func (s *RoundSystem) anyMoving(world *engine.World) bool {
	for _, e := range world.Players.All() {
		if p, ok := world.Players.Get(e); ok && p.Alive && p.Direction != navigation.None {
			return true
		}
	}
	return false
}

func (s *RoundSystem) census(world *engine.World) (total, alive int, survivor core.Entity) {
	for _, e := range world.Players.All() {
		p, ok := world.Players.Get(e)
		if !ok {
			continue
		}
		total++
		if p.Alive {
			alive++
			survivor = e
		}
	}
	return total, alive, survivor
}
