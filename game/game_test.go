package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/config"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/engine"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/navigation"
	"github.com/lixenwraith/light-cycle/render"
)

type mockSound struct {
	engineStarts int
	engineStops  int
	turns        int
	crashes      int
	roundOvers   int
	muted        bool
}

func (m *mockSound) StartEngine() { m.engineStarts++ }
func (m *mockSound) StopEngine() { m.engineStops++ }
func (m *mockSound) PlayTurn() { m.turns++ }
func (m *mockSound) PlayCrash() { m.crashes++ }
func (m *mockSound) PlayRoundOver() { m.roundOvers++ }
func (m *mockSound) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

type fixture struct {
	game   *Game
	screen tcell.SimulationScreen
	time   *engine.MockTimeProvider
	sound  *mockSound
}

func newFixture(t *testing.T, withSound bool) *fixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Arena.Width = 20
	cfg.Arena.Height = 10
	cfg.Render.ColorMode = "truecolor"

	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	clock := engine.NewPausableClockWith(mock)

	f := &fixture{screen: screen, time: mock}
	var sound Sound
	if withSound {
		f.sound = &mockSound{}
		sound = f.sound
	}

	g, err := New(screen, cfg, sound, clock)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	f.game = g
	return f
}

func (f *fixture) key(k tcell.Key, r rune) bool {
	return f.game.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
}

func (f *fixture) step(d time.Duration) {
	f.time.Advance(d)
	f.game.Step()
}

func (f *fixture) player(t *testing.T, who input.Designation) (components.PlayerComponent, components.MotionComponent) {
	t.Helper()
	w := f.game.World()
	for _, e := range w.Players.All() {
		p, _ := w.Players.Get(e)
		if p.Designation == who {
			m, _ := w.Motions.Get(e)
			return p, m
		}
	}
	t.Fatalf("Player %s not found", who)
	return components.PlayerComponent{}, components.MotionComponent{}
}

func TestNewSpawnsAndRenders(t *testing.T) {
	f := newFixture(t, true)
	w := f.game.World()

	if w.Players.Count() != 2 {
		t.Fatalf("Expected 2 players, got %d", w.Players.Count())
	}
	if w.Trails.Count() != 2 {
		t.Errorf("Expected one base segment per player, got %d", w.Trails.Count())
	}
	if phase, _ := w.Resources.State.Phase(); phase != engine.PhaseReady {
		t.Errorf("Expected READY, got %v", phase)
	}

	f.step(constants.FrameUpdateInterval)

	ctx := render.NewRenderContext(w, 60, 20, constants.DefaultCellWidth)
	if r, _, _, _ := f.screen.GetContent(ctx.OriginX-1, ctx.OriginY-1); r != constants.BorderTopLeft {
		t.Errorf("Expected border corner on screen, got %q", r)
	}
	if r, _, _, _ := f.screen.GetContent(ctx.OriginX-1, ctx.StatusRow()); r != 'R' {
		t.Errorf("Expected status bar under the arena, got %q", r)
	}
}

func TestFirstHeadingStartsRound(t *testing.T) {
	f := newFixture(t, true)

	if !f.key(tcell.KeyRight, 0) {
		t.Fatal("Expected movement key not to quit")
	}
	f.step(100 * time.Millisecond)

	p1, _ := f.player(t, input.PlayerOne)
	if p1.Direction != navigation.East {
		t.Errorf("Expected P1 heading east, got %v", p1.Direction)
	}
	p2, _ := f.player(t, input.PlayerTwo)
	if p2.Direction != navigation.None {
		t.Errorf("Expected P2 idle, got %v", p2.Direction)
	}
	if phase, _ := f.game.World().Resources.State.Phase(); phase != engine.PhaseRunning {
		t.Errorf("Expected RUNNING, got %v", phase)
	}
	// Two base segments from spawn, P1's turn and the round start
	if got := f.game.Stats().Ints.Get("events").Load(); got != 4 {
		t.Errorf("Expected 4 dispatched events, got %d", got)
	}
	if f.sound.turns != 1 || f.sound.engineStarts != 1 {
		t.Errorf("Expected 1 turn and 1 engine start, got %d and %d", f.sound.turns, f.sound.engineStarts)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	f := newFixture(t, true)
	f.key(tcell.KeyRight, 0)
	f.step(100 * time.Millisecond)

	f.key(tcell.KeyRune, 'p')
	if !f.game.World().Resources.State.Paused.Load() {
		t.Fatal("Expected paused state")
	}
	if f.sound.engineStops != 1 {
		t.Errorf("Expected engine stopped on pause, got %d stops", f.sound.engineStops)
	}

	_, before := f.player(t, input.PlayerOne)
	f.step(100 * time.Millisecond)
	_, after := f.player(t, input.PlayerOne)
	if !after.Body.Equal(before.Body) {
		t.Errorf("Expected body frozen at %v while paused, got %v", before.Body, after.Body)
	}

	f.key(tcell.KeyRune, 'p')
	if f.sound.engineStarts != 2 {
		t.Errorf("Expected engine restarted on resume, got %d starts", f.sound.engineStarts)
	}

	f.step(40 * time.Millisecond)
	_, moved := f.player(t, input.PlayerOne)
	if math.Abs(moved.Body.X-5.6) > 1e-9 {
		t.Errorf("Expected body x 5.6 after 40ms of play, got %v", moved.Body.X)
	}
}

func TestDeltaClamped(t *testing.T) {
	f := newFixture(t, false)
	f.key(tcell.KeyRight, 0)
	f.step(constants.FrameUpdateInterval)

	f.step(2 * time.Second)
	if dt := f.game.World().Resources.Time.DeltaTime; dt != constants.MaxFrameDelta {
		t.Errorf("Expected delta clamped to %v, got %v", constants.MaxFrameDelta, dt)
	}
	if ms := f.game.Stats().Floats.Get("frame_ms").Get(); ms != 50 {
		t.Errorf("Expected frame_ms 50, got %v", ms)
	}
	if frames := f.game.Stats().Ints.Get("frames").Load(); frames != 2 {
		t.Errorf("Expected 2 frames, got %d", frames)
	}
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t, false)
	tests := []struct {
		key tcell.Key
		r   rune
	}{
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
		{tcell.KeyCtrlQ, 0},
	}
	for _, tt := range tests {
		if f.key(tt.key, tt.r) {
			t.Errorf("Expected %v to quit", tt.key)
		}
	}
}

func TestMuteToggle(t *testing.T) {
	f := newFixture(t, true)
	f.key(tcell.KeyRune, 'm')
	if !f.sound.muted || !f.game.World().Resources.State.Muted.Load() {
		t.Error("Expected muted after first toggle")
	}
	f.key(tcell.KeyRune, 'm')
	if f.sound.muted || f.game.World().Resources.State.Muted.Load() {
		t.Error("Expected unmuted after second toggle")
	}

	silent := newFixture(t, false)
	silent.key(tcell.KeyRune, 'm')
	if !silent.game.World().Resources.State.Muted.Load() {
		t.Error("Expected muted flag without a sound device")
	}
}

func TestRestartRespawns(t *testing.T) {
	f := newFixture(t, true)
	f.key(tcell.KeyRight, 0)
	f.step(100 * time.Millisecond)
	f.step(40 * time.Millisecond)

	f.key(tcell.KeyRune, 'r')
	f.step(constants.FrameUpdateInterval)

	w := f.game.World()
	if phase, _ := w.Resources.State.Phase(); phase != engine.PhaseReady {
		t.Errorf("Expected READY after restart, got %v", phase)
	}
	if w.Resources.State.Round() != 1 {
		t.Errorf("Expected mid-round restart to keep round 1, got %d", w.Resources.State.Round())
	}
	p1, m1 := f.player(t, input.PlayerOne)
	if p1.Direction != navigation.None || m1.Body.X != 5 {
		t.Errorf("Expected P1 respawned idle at x 5, got %v at %v", p1.Direction, m1.Body)
	}
	if f.sound.engineStops != 1 {
		t.Errorf("Expected engine stopped on restart, got %d", f.sound.engineStops)
	}
}

func TestResize(t *testing.T) {
	f := newFixture(t, false)
	f.game.HandleEvent(tcell.NewEventResize(80, 30))
	if f.game.width != 80 || f.game.height != 30 {
		t.Errorf("Expected 80x30, got %dx%d", f.game.width, f.game.height)
	}
	if w, h := f.game.orchestrator.Buffer().Size(); w != 80 || h != 30 {
		t.Errorf("Expected buffer resized to 80x30, got %dx%d", w, h)
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	f := newFixture(t, false)
	f.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	errCh := make(chan error, 1)
	go func() { errCh <- f.game.Run(context.Background()) }()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected clean quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after escape")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.game.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
