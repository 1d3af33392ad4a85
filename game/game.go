package game

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/config"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/render"
	"github.com/lixenwraith/light-cycle/render/renderers"
	"github.com/lixenwraith/light-cycle/status"
	"github.com/lixenwraith/light-cycle/systems"
)

// Sound is the audio surface the game drives, satisfied by audio.SoundManager
type Sound interface {
	systems.SoundPlayer
	ToggleMute() bool
}

// Game owns the world, its systems and the render pipeline for one terminal session
type Game struct {
	screen       tcell.Screen
	world        *engine.World
	router       *engine.EventRouter
	orchestrator *render.RenderOrchestrator
	tracker      *input.Tracker
	clock        *engine.PausableClock
	sound        Sound

	cellWidth int
	width     int
	height    int

	frame    int64
	lastTick time.Time

	stats       *status.Registry
	statFrames  *atomic.Int64
	statEvents  *atomic.Int64
	statFrameMs *status.AtomicFloat
}

// New assembles a game from a validated config
// sound may be nil to run silent; clock may be nil to use the system clock
func New(screen tcell.Screen, cfg *config.Config, sound Sound, clock *engine.PausableClock) (*Game, error) {
	if clock == nil {
		clock = engine.NewPausableClock()
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	playType, err := cfg.PlayType()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.PlayerColors()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.ColorMode()
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld()
	world.Resources.Arena.Width = cfg.Arena.Width
	world.Resources.Arena.Height = cfg.Arena.Height

	trails := systems.NewTrailGenerator()
	spawner := &systems.Spawner{
		Trails:     trails,
		Bindings:   bindings,
		PlayType:   playType,
		Players:    cfg.Game.Players,
		Speed:      cfg.Game.Speed,
		DimPercent: cfg.Game.DeathDimPercent,
		Colors:     colors,
	}
	tracker := input.NewTracker(cfg.Game.HoldTimeout)

	world.AddSystem(systems.NewInputSystem(tracker))
	world.AddSystem(systems.NewMovementSystem(trails))
	world.AddSystem(systems.NewCollisionSystem())
	world.AddSystem(systems.NewRoundSystem(spawner, cfg.Game.RoundOverDelay))

	router := engine.NewEventRouter(world.Resources.Events)
	router.Register(systems.NewAudioSystem(sound))

	orchestrator := render.NewRenderOrchestrator(screen, mode)
	orchestrator.Register(renderers.NewArenaRenderer(), render.PriorityBorder)
	orchestrator.Register(renderers.NewTrailRenderer(world), render.PriorityTrail)
	orchestrator.Register(renderers.NewPlayerRenderer(world), render.PriorityPlayers)
	orchestrator.Register(renderers.NewStatusBarRenderer(world), render.PriorityUI)
	orchestrator.Register(renderers.NewOverlayRenderer(), render.PriorityOverlay)

	if err := spawner.Spawn(world); err != nil {
		return nil, fmt.Errorf("initial spawn: %w", err)
	}
	now := clock.Now()
	world.Resources.State.Reset(now)

	width, height := screen.Size()
	log.Printf("game ready: %dx%d arena, %d %s players, color %s",
		cfg.Arena.Width, cfg.Arena.Height, cfg.Game.Players, playType, orchestrator.Mode())

	stats := status.NewRegistry()
	return &Game{
		screen:       screen,
		world:        world,
		router:       router,
		orchestrator: orchestrator,
		tracker:      tracker,
		clock:        clock,
		sound:        sound,
		cellWidth:    cfg.Render.CellWidth,
		width:        width,
		height:       height,
		lastTick:     now,
		stats:        stats,
		statFrames:   stats.Ints.Get("frames"),
		statEvents:   stats.Ints.Get("events"),
		statFrameMs:  stats.Floats.Get("frame_ms"),
	}, nil
}

// World exposes the ECS world
func (g *Game) World() *engine.World {
	return g.world
}

// Stats exposes frame diagnostics
func (g *Game) Stats() *status.Registry {
	return g.stats
}

// Run polls terminal events and steps frames until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	g.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Step()
		}
	}
}

// HandleEvent applies one terminal event, returns false when the game should quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch input.IntentFor(ev) {
		case input.IntentQuit:
			return false
		case input.IntentPause:
			g.togglePause()
		case input.IntentRestart:
			g.world.Resources.State.RestartRequested.Store(true)
			g.tracker.Reset()
			if g.sound != nil {
				g.sound.StopEngine()
			}
		case input.IntentToggleMute:
			g.toggleMute()
		default:
			g.tracker.Feed(input.FromEvent(ev), g.clock.RealTime())
		}
	case *tcell.EventResize:
		g.width, g.height = ev.Size()
		g.orchestrator.Resize(g.width, g.height)
	}
	return true
}

// Step runs one frame: systems and event dispatch unless paused, then render
func (g *Game) Step() {
	now := g.clock.Now()
	dt := now.Sub(g.lastTick)
	if dt < 0 {
		dt = 0
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	g.lastTick = now
	g.frame++
	g.statFrames.Add(1)
	g.statFrameMs.Set(float64(dt) / float64(time.Millisecond))

	g.world.Resources.Time.Update(now, g.clock.RealTime(), dt, g.frame)

	if !g.clock.IsPaused() {
		g.tracker.Advance(g.clock.RealTime())
		g.world.Update(dt)
		g.statEvents.Add(int64(g.router.DispatchAll(g.world)))
	}

	ctx := render.NewRenderContext(g.world, g.width, g.height, g.cellWidth)
	g.orchestrator.RenderFrame(ctx, g.world)
}

func (g *Game) togglePause() {
	paused := g.clock.Toggle()
	g.world.Resources.State.Paused.Store(paused)

	if g.sound == nil {
		return
	}
	if paused {
		g.sound.StopEngine()
		return
	}
	if phase, _ := g.world.Resources.State.Phase(); phase == engine.PhaseRunning {
		g.sound.StartEngine()
	}
}

func (g *Game) toggleMute() {
	state := g.world.Resources.State
	if g.sound == nil {
		state.Muted.Store(!state.Muted.Load())
		return
	}
	state.Muted.Store(g.sound.ToggleMute())
}
