package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
)

// CollisionSystem kills cycles that hit a wall, a trail or another cycle
// All hits are resolved before any death is applied, so head-on crashes kill both
type CollisionSystem struct{}

// NewCollisionSystem creates a collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

type crash struct {
	entity core.Entity
	cause  components.CrashCause
	at     core.Vec2
}

// Update tests every live cycle body against the arena
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	players := world.Players.All()
	segments := world.Trails.All()
	arena := world.Resources.Arena

	var crashes []crash
	for _, e := range players {
		player, ok := world.Players.Get(e)
		if !ok || !player.Alive {
			continue
		}
		motion, ok := world.Motions.Get(e)
		if !ok {
			continue
		}
		if cause := s.detect(world, arena, e, motion.Bounds(), players, segments); cause != components.CrashNone {
			crashes = append(crashes, crash{entity: e, cause: cause, at: motion.Body})
		}
	}

	for _, c := range crashes {
		s.kill(world, c)
	}
}

func (s *CollisionSystem) detect(world *engine.World, arena *engine.ArenaResource, e core.Entity, body core.Rect, players, segments []core.Entity) components.CrashCause {
	if !arena.Contains(body) {
		return components.CrashWall
	}

	for _, segEntity := range segments {
		seg, ok := world.Trails.Get(segEntity)
		if !ok || !seg.CollidesWith(e) {
			continue
		}
		if seg.Bounds().Overlaps(body) {
			return components.CrashTrail
		}
	}

	for _, other := range players {
		if other == e {
			continue
		}
		motion, ok := world.Motions.Get(other)
		if !ok {
			continue
		}
		if motion.Bounds().Overlaps(body) {
			return components.CrashCycle
		}
	}
	return components.CrashNone
}

// kill dims the cycle and its whole trail and reports the crash
func (s *CollisionSystem) kill(world *engine.World, c crash) {
	var trail []core.Entity
	var color core.RGB
	world.Players.Update(c.entity, func(p *components.PlayerComponent) {
		p.Alive = false
		p.CrashedBy = c.cause
		p.Color = p.Color.Scale(p.DeathDimFactor())
		trail = p.Trail
		color = p.Color
	})

	for _, seg := range trail {
		world.Trails.Update(seg, func(t *components.TrailSegmentComponent) {
			t.Color = color
		})
	}

	log.Printf("player %d crashed into %s at %v", c.entity, c.cause, c.at)
	world.PushEvent(engine.EventPlayerCrashed, &engine.CrashPayload{
		Player: c.entity,
		Cause:  c.cause,
		At:     c.at,
	})
}
