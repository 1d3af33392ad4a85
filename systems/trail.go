package systems

import (
	"fmt"
	"log"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/navigation"
)

// TrailGenerator grows a cycle's trail as it crosses cell boundaries
// Invoked by MovementSystem on arrival, not scheduled on its own
type TrailGenerator struct{}

// NewTrailGenerator creates a trail generator
func NewTrailGenerator() *TrailGenerator {
	return &TrailGenerator{}
}

// CreateBaseSegment places the first segment under a freshly spawned cycle
func (g *TrailGenerator) CreateBaseSegment(world *engine.World, owner core.Entity, player *components.PlayerComponent, motion components.MotionComponent) core.Entity {
	return g.CreateTrail(world, owner, player, motion.Body, motion.Size)
}

// Generate consumes the pending trail update of a player that reached its move point
// Position unchanged since the last segment (idle cycle, first turn) is a no-op
func (g *TrailGenerator) Generate(world *engine.World, owner core.Entity, player *components.PlayerComponent, motion components.MotionComponent) error {
	if !player.UpdateTrail {
		return nil
	}
	defer func() { player.UpdateTrail = false }()

	last, ok := player.LastTrail()
	if !ok {
		g.CreateBaseSegment(world, owner, player, motion)
		return nil
	}
	seg, ok := world.Trails.Get(last)
	if !ok {
		return fmt.Errorf("trail segment %d of player %d missing", last, owner)
	}
	if motion.Body.Equal(seg.Center) {
		return nil
	}
	return g.HandleTrail(world, owner, player, motion)
}

// HandleTrail stretches the last segment while heading is kept, otherwise starts a new one
func (g *TrailGenerator) HandleTrail(world *engine.World, owner core.Entity, player *components.PlayerComponent, motion components.MotionComponent) error {
	if player.DirectionsMatch {
		return g.UpdateLastTrail(world, owner, player, motion.Size)
	}
	g.CreateTrail(world, owner, player, player.NewTrailPos, motion.Size)
	return nil
}

// CreateTrail adds a segment of the given size at pos and makes it the newest
// The previous newest segment becomes solid for its owner again
func (g *TrailGenerator) CreateTrail(world *engine.World, owner core.Entity, player *components.PlayerComponent, pos, size core.Vec2) core.Entity {
	if prev, ok := player.LastTrail(); ok {
		world.Trails.Update(prev, func(seg *components.TrailSegmentComponent) {
			seg.IgnoreOwner = false
		})
	}

	player.TrailOps++
	log.Printf("creating trail %d pos %v", player.TrailOps, pos)

	e := world.CreateEntity()
	world.Trails.Set(e, components.TrailSegmentComponent{
		Owner:           owner,
		Order:           len(player.Trail),
		Center:          pos,
		Scale:           size,
		Color:           player.Color,
		Visible:         true,
		ColliderEnabled: true,
		IgnoreOwner:     true,
	})
	player.Trail = append(player.Trail, e)

	world.PushEvent(engine.EventTrailCreated, &engine.TrailPayload{
		Player:  owner,
		Segment: e,
		Op:      player.TrailOps,
		At:      pos,
	})
	return e
}

// UpdateLastTrail extends the newest segment one body size toward the buffered heading
func (g *TrailGenerator) UpdateLastTrail(world *engine.World, owner core.Entity, player *components.PlayerComponent, size core.Vec2) error {
	last, ok := player.LastTrail()
	if !ok {
		return fmt.Errorf("player %d has no trail to extend", owner)
	}

	var err error
	var center core.Vec2
	world.Trails.Update(last, func(seg *components.TrailSegmentComponent) {
		switch player.BufferDir {
		case navigation.North:
			seg.Scale.Y += size.Y
			seg.Center.Y -= size.Y / 2
		case navigation.South:
			seg.Scale.Y += size.Y
			seg.Center.Y += size.Y / 2
		case navigation.East:
			seg.Scale.X += size.X
			seg.Center.X += size.X / 2
		case navigation.West:
			seg.Scale.X += size.X
			seg.Center.X -= size.X / 2
		case navigation.None:
		default:
			err = fmt.Errorf("%w: %q", navigation.ErrNoVelocity, player.BufferDir.String())
		}
		center = seg.Center
	})
	if err != nil {
		return err
	}
	if player.BufferDir == navigation.None {
		return nil
	}

	player.TrailOps++
	log.Printf("extending trail %d pos %v", player.TrailOps, center)

	world.PushEvent(engine.EventTrailExtended, &engine.TrailPayload{
		Player:  owner,
		Segment: last,
		Op:      player.TrailOps,
		At:      center,
	})
	return nil
}
