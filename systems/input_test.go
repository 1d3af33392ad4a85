package systems

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/navigation"
)

var (
	keyUp    = input.Special(tcell.KeyUp)
	keyRight = input.Special(tcell.KeyRight)
	keyLeft  = input.Special(tcell.KeyLeft)
)

// TestInputSetsBufferDirection verifies a pressed key selects the buffered heading
func TestInputSetsBufferDirection(t *testing.T) {
	world := newTestWorld(20, 10)
	trails := NewTrailGenerator()
	tracker := input.NewTracker(500 * time.Millisecond)
	sys := NewInputSystem(tracker)
	e := addPlayer(world, trails, input.PlayerOne, 5, 5, snapSpeed)

	t0 := time.Unix(0, 0)
	tracker.Feed(keyRight, t0)
	tracker.Advance(t0)
	sys.Update(world, testFrame)

	p := mustPlayer(world, e)
	if p.BufferDir != navigation.East {
		t.Errorf("Expected East, got %v", p.BufferDir)
	}
	if p.Queue.Len() != 1 {
		t.Errorf("Expected 1 queued key, got %d", p.Queue.Len())
	}

	// Released key leaves the heading in place
	tracker.Advance(t0.Add(time.Second))
	sys.Update(world, testFrame)
	p = mustPlayer(world, e)
	if p.Queue.Len() != 0 {
		t.Errorf("Expected empty queue after release, got %d", p.Queue.Len())
	}
	if p.BufferDir != navigation.East {
		t.Errorf("Expected East to persist, got %v", p.BufferDir)
	}
}

// TestInputRejectsReverse verifies the opposite of the current heading is ignored
func TestInputRejectsReverse(t *testing.T) {
	world := newTestWorld(20, 10)
	trails := NewTrailGenerator()
	tracker := input.NewTracker(500 * time.Millisecond)
	sys := NewInputSystem(tracker)
	e := addPlayer(world, trails, input.PlayerOne, 5, 5, snapSpeed)
	world.Players.Update(e, func(p *components.PlayerComponent) {
		p.Direction = navigation.East
		p.BufferDir = navigation.East
	})

	t0 := time.Unix(0, 0)
	tracker.Feed(keyLeft, t0)
	tracker.Advance(t0)
	sys.Update(world, testFrame)

	if p := mustPlayer(world, e); p.BufferDir != navigation.East {
		t.Errorf("Expected reverse to be rejected, got %v", p.BufferDir)
	}
}

// TestInputLastHeldWins verifies the most recent held key decides and release falls back
func TestInputLastHeldWins(t *testing.T) {
	world := newTestWorld(20, 10)
	trails := NewTrailGenerator()
	tracker := input.NewTracker(500 * time.Millisecond)
	sys := NewInputSystem(tracker)
	e := addPlayer(world, trails, input.PlayerOne, 5, 5, snapSpeed)
	world.Players.Update(e, func(p *components.PlayerComponent) {
		p.Direction = navigation.West
		p.BufferDir = navigation.West
	})

	t0 := time.Unix(0, 0)
	tracker.Feed(keyUp, t0)
	tracker.Advance(t0)
	sys.Update(world, testFrame)

	t1 := t0.Add(100 * time.Millisecond)
	tracker.Feed(keyUp, t1)
	tracker.Feed(keyLeft, t1) // same as current heading, still queued
	tracker.Advance(t1)
	sys.Update(world, testFrame)

	p := mustPlayer(world, e)
	if last, _ := p.Queue.Last(); last != keyLeft {
		t.Errorf("Expected left as last queued key, got %v", last)
	}
	if p.BufferDir != navigation.West {
		t.Errorf("Expected West from last held key, got %v", p.BufferDir)
	}

	// Up pressed again after left, left stops
	t2 := t1.Add(550 * time.Millisecond)
	tracker.Feed(keyUp, t2)
	tracker.Advance(t2)
	sys.Update(world, testFrame)

	p = mustPlayer(world, e)
	if p.Queue.Len() != 1 {
		t.Fatalf("Expected only up queued, got %d", p.Queue.Len())
	}
	if p.BufferDir != navigation.North {
		t.Errorf("Expected North after left released, got %v", p.BufferDir)
	}
}

// TestInputZigZagRepress verifies re-pressing a held key makes it the newest again
func TestInputZigZagRepress(t *testing.T) {
	world := newTestWorld(20, 10)
	trails := NewTrailGenerator()
	tracker := input.NewTracker(500 * time.Millisecond)
	sys := NewInputSystem(tracker)
	e := addPlayer(world, trails, input.PlayerOne, 5, 5, snapSpeed)

	steps := []struct {
		at   time.Duration
		key  input.KeyID
		want navigation.Direction
	}{
		{0, keyRight, navigation.East},
		{100 * time.Millisecond, keyUp, navigation.North},
		{300 * time.Millisecond, keyRight, navigation.East},
	}

	t0 := time.Unix(0, 0)
	for i, step := range steps {
		now := t0.Add(step.at)
		tracker.Feed(step.key, now)
		tracker.Advance(now)
		sys.Update(world, testFrame)

		p := mustPlayer(world, e)
		if p.BufferDir != step.want {
			t.Errorf("Step %d: expected %v, got %v", i, step.want, p.BufferDir)
		}
		if last, _ := p.Queue.Last(); last != step.key {
			t.Errorf("Step %d: expected %v as last queued key, got %v", i, step.key, last)
		}
	}

	if p := mustPlayer(world, e); p.Queue.Len() != 2 {
		t.Errorf("Expected 2 held keys, got %d", p.Queue.Len())
	}
}

// TestInputSkipsDeadPlayers verifies dead cycles ignore keys
func TestInputSkipsDeadPlayers(t *testing.T) {
	world := newTestWorld(20, 10)
	trails := NewTrailGenerator()
	tracker := input.NewTracker(0)
	sys := NewInputSystem(tracker)
	e := addPlayer(world, trails, input.PlayerOne, 5, 5, snapSpeed)
	world.Players.Update(e, func(p *components.PlayerComponent) { p.Alive = false })

	t0 := time.Unix(0, 0)
	tracker.Feed(keyUp, t0)
	tracker.Advance(t0)
	sys.Update(world, testFrame)

	if p := mustPlayer(world, e); p.BufferDir != navigation.None || p.Queue.Len() != 0 {
		t.Errorf("Expected dead player untouched, got %v with %d queued", p.BufferDir, p.Queue.Len())
	}
}
