package systems

import (
	"fmt"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
)

// Spawner resets the world to the start of a round
type Spawner struct {
	Trails     *TrailGenerator
	Bindings   input.Bindings
	PlayType   input.PlayType
	Players    int
	Speed      float64
	DimPercent int
	Colors     []core.RGB // Indexed by designation, white when short
}

// SpawnPoint returns the starting cell of a designation
// P1 left, P2 right, P3 top, P4 bottom, each a quarter in from its edge
func (s *Spawner) SpawnPoint(arena *engine.ArenaResource, who input.Designation) core.Vec2 {
	insetX := arena.Width / constants.SpawnInsetDivisor
	insetY := arena.Height / constants.SpawnInsetDivisor
	midX, midY := arena.Width/2, arena.Height/2

	var cell core.Point
	switch who {
	case input.PlayerOne:
		cell = core.Point{X: insetX, Y: midY}
	case input.PlayerTwo:
		cell = core.Point{X: arena.Width - 1 - insetX, Y: midY}
	case input.PlayerThree:
		cell = core.Point{X: midX, Y: insetY}
	default:
		cell = core.Point{X: midX, Y: arena.Height - 1 - insetY}
	}
	return core.Vec2{X: float64(cell.X) * arena.CellSize.X, Y: float64(cell.Y) * arena.CellSize.Y}
}

// Spawn clears the world and places every player with its base trail segment
func (s *Spawner) Spawn(world *engine.World) error {
	if s.Players < 1 || s.Players > input.MaxPlayers {
		return fmt.Errorf("player count %d outside 1..%d", s.Players, input.MaxPlayers)
	}

	world.Clear()
	arena := world.Resources.Arena

	for i := 0; i < s.Players; i++ {
		who := input.Designation(i)
		binding, err := s.Bindings.For(s.PlayType, who)
		if err != nil {
			return fmt.Errorf("spawn %s: %w", who, err)
		}

		color := core.RGBWhite
		if i < len(s.Colors) {
			color = s.Colors[i]
		}

		e := world.CreateEntity()
		player := components.NewPlayerComponent(who, binding, s.Speed, color, s.DimPercent)
		motion := components.NewMotionComponent(s.SpawnPoint(arena, who), arena.CellSize)
		s.Trails.CreateBaseSegment(world, e, &player, motion)

		world.Players.Set(e, player)
		world.Motions.Set(e, motion)
	}
	return nil
}
