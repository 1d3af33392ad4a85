package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
)

// MovementSystem glides cycles between cell centers
// On reaching the move point the buffered heading is committed and the trail is updated
type MovementSystem struct {
	trails *TrailGenerator
	logger *log.Logger // nil writes to the standard logger
	diag   map[core.Entity]*core.TimedLogger
}

// NewMovementSystem creates a movement system driving the given trail generator
func NewMovementSystem(trails *TrailGenerator) *MovementSystem {
	return &MovementSystem{
		trails: trails,
		diag:   make(map[core.Entity]*core.TimedLogger),
	}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update advances every live cycle by speed * dt
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	if phase, _ := world.Resources.State.Phase(); phase == engine.PhaseRoundOver {
		return
	}

	for _, e := range world.Players.All() {
		player, ok := world.Players.Get(e)
		if !ok || !player.Alive {
			continue
		}
		motion, ok := world.Motions.Get(e)
		if !ok {
			continue
		}

		// Heading may have changed since the buffer point was last placed
		s.placeBuffer(&player, &motion)

		motion.Body = core.MoveTowards(motion.Body, motion.MovePoint, player.Speed*dt.Seconds())

		if motion.Arrived() {
			player.UpdateTrail = true
			player.DirectionsMatch = player.Direction == player.BufferDir
			player.NewTrailPos = motion.MovePoint

			from := player.Direction
			motion.MovePoint = motion.BufferPoint
			player.Direction = player.BufferDir

			if from != player.Direction {
				world.PushEvent(engine.EventPlayerTurned, &engine.TurnPayload{
					Player: e,
					From:   from,
					To:     player.Direction,
					At:     player.NewTrailPos,
				})
			}

			if err := s.trails.Generate(world, e, &player, motion); err != nil {
				log.Printf("trail %s: %v", player.Designation, err)
			}
		}

		s.placeBuffer(&player, &motion)

		world.Players.Set(e, player)
		world.Motions.Set(e, motion)

		s.diagFor(world, e).Logf(world.Resources.Time.RealTime, "%s body %v move %v buffer %v dir %v",
			player.Designation, motion.Body, motion.MovePoint, motion.BufferPoint, player.Direction)
	}
}

// diagFor returns the throttled diagnostics logger of one cycle
func (s *MovementSystem) diagFor(world *engine.World, e core.Entity) *core.TimedLogger {
	if d, ok := s.diag[e]; ok {
		return d
	}
	// Entities are recreated on restart
	for old := range s.diag {
		if !world.Players.Has(old) {
			delete(s.diag, old)
		}
	}
	d := core.NewTimedLogger(time.Second, s.logger)
	s.diag[e] = d
	return d
}

// placeBuffer puts the buffer point one body size past the move point in the buffered heading
func (s *MovementSystem) placeBuffer(player *components.PlayerComponent, motion *components.MotionComponent) {
	delta, err := player.BufferDir.Delta(motion.Size)
	if err != nil {
		log.Printf("movement %s: %v", player.Designation, err)
		return
	}
	motion.BufferPoint = motion.MovePoint.Add(delta)
}
