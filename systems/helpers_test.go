package systems

import (
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/navigation"
)

// snapSpeed covers more than one cell per testFrame so each frame lands on the move point
const (
	snapSpeed = 20.0
	testFrame = 100 * time.Millisecond
)

var testColor = core.RGB{R: 0, G: 200, B: 255}

func newTestWorld(width, height int) *engine.World {
	world := engine.NewWorld()
	world.Resources.Arena.Width = width
	world.Resources.Arena.Height = height
	return world
}

// addPlayer spawns a cycle at cell (x, y) with its base trail segment
func addPlayer(world *engine.World, trails *TrailGenerator, who input.Designation, x, y int, speed float64) core.Entity {
	e := world.CreateEntity()
	player := components.NewPlayerComponent(who, input.PrimaryBinding(), speed, testColor, 40)
	motion := components.NewMotionComponent(core.Vec2{X: float64(x), Y: float64(y)}, core.Vec2{X: 1, Y: 1})
	trails.CreateBaseSegment(world, e, &player, motion)
	world.Players.Set(e, player)
	world.Motions.Set(e, motion)
	return e
}

func mustPlayer(world *engine.World, e core.Entity) components.PlayerComponent {
	p, ok := world.Players.Get(e)
	if !ok {
		panic("player missing")
	}
	return p
}

func mustMotion(world *engine.World, e core.Entity) components.MotionComponent {
	m, ok := world.Motions.Get(e)
	if !ok {
		panic("motion missing")
	}
	return m
}

func steer(world *engine.World, e core.Entity, dir navigation.Direction) {
	world.Players.Update(e, func(p *components.PlayerComponent) {
		p.BufferDir = dir
	})
}
