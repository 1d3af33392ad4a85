package input

import (
	"slices"
	"sync"
	"time"
)

// DefaultHoldTimeout covers the usual OS auto-repeat delay
const DefaultHoldTimeout = 500 * time.Millisecond

// Tracker turns terminal key presses into per-frame down/up transitions
// Terminals report presses and auto-repeats but never releases, so a key counts
// as released once no press for it arrives within the hold timeout.
// Only the most recently pressed key auto-repeats: a press of any other held key
// is a fresh press and goes down again.
type Tracker struct {
	mu          sync.Mutex
	holdTimeout time.Duration

	lastSeen map[KeyID]time.Time // Held keys and their latest press
	lastFed  KeyID
	hasFed   bool
	pending  []KeyID // Fresh presses since the last Advance, oldest first

	down      map[KeyID]struct{} // Went down this frame
	downOrder []KeyID
	up        map[KeyID]struct{} // Went up this frame
}

// NewTracker creates a tracker; non-positive timeout uses DefaultHoldTimeout
func NewTracker(holdTimeout time.Duration) *Tracker {
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	return &Tracker{
		holdTimeout: holdTimeout,
		lastSeen:    make(map[KeyID]time.Time),
		down:        make(map[KeyID]struct{}),
		up:          make(map[KeyID]struct{}),
	}
}

// Feed records a press or auto-repeat of key at the given time
func (t *Tracker) Feed(key KeyID, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, held := t.lastSeen[key]
	repeat := held && t.hasFed && t.lastFed == key
	if !repeat {
		if i := slices.Index(t.pending, key); i >= 0 {
			t.pending = slices.Delete(t.pending, i, i+1)
		}
		t.pending = append(t.pending, key)
	}
	t.lastSeen[key] = at
	t.lastFed = key
	t.hasFed = true
}

// Advance starts a new frame at now, recomputing down and up sets
func (t *Tracker) Advance(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.down)
	clear(t.up)
	t.downOrder = t.downOrder[:0]

	for _, k := range t.pending {
		t.down[k] = struct{}{}
		t.downOrder = append(t.downOrder, k)
	}
	t.pending = t.pending[:0]

	for k, seen := range t.lastSeen {
		// A key pressed this frame is never released in the same frame
		if _, fresh := t.down[k]; fresh {
			continue
		}
		if now.Sub(seen) >= t.holdTimeout {
			delete(t.lastSeen, k)
			t.up[k] = struct{}{}
		}
	}
}

// KeyDown reports whether key went down during the current frame
func (t *Tracker) KeyDown(key KeyID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.down[key]
	return ok
}

// Downs returns the keys that went down during the current frame in press order
func (t *Tracker) Downs() []KeyID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.downOrder)
}

// KeyUp reports whether key was released during the current frame
func (t *Tracker) KeyUp(key KeyID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.up[key]
	return ok
}

// Reset drops all key state
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.lastSeen)
	clear(t.down)
	clear(t.up)
	t.pending = t.pending[:0]
	t.downOrder = t.downOrder[:0]
	t.hasFed = false
}
