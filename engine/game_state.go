package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/light-cycle/input"
)

// GamePhase represents the round lifecycle
type GamePhase int

const (
	PhaseReady     GamePhase = iota // Spawned, waiting for the first heading
	PhaseRunning                    // At least one cycle is moving
	PhaseRoundOver                  // Result shown, waiting for restart
)

func (p GamePhase) String() string {
	switch p {
	case PhaseReady:
		return "READY"
	case PhaseRunning:
		return "RUNNING"
	case PhaseRoundOver:
		return "ROUND OVER"
	}
	return "UNKNOWN"
}

// GameState centralizes round and toggle state
type GameState struct {
	// ===== UI TOGGLES (lock-free atomics) =====
	Paused           atomic.Bool
	Muted            atomic.Bool
	RestartRequested atomic.Bool

	// ===== ROUND STATE (mutex protected) =====
	mu         sync.RWMutex
	phase      GamePhase
	phaseStart time.Time
	round      int
	scores     [input.MaxPlayers]int
	winner     input.Designation
	hasWinner  bool
}

// NewGameState creates state for round 1 in the ready phase
func NewGameState() *GameState {
	return &GameState{
		phase: PhaseReady,
		round: 1,
	}
}

// Phase returns the current phase and when it began
func (gs *GameState) Phase() (GamePhase, time.Time) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase, gs.phaseStart
}

// SetPhase changes phase, stamping the start time
func (gs *GameState) SetPhase(phase GamePhase, now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.phase = phase
	gs.phaseStart = now
}

// Round returns the 1-based round number
func (gs *GameState) Round() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.round
}

// EndRound moves to RoundOver and credits the winner if any
func (gs *GameState) EndRound(winner input.Designation, hasWinner bool, now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.phase = PhaseRoundOver
	gs.phaseStart = now
	gs.winner = winner
	gs.hasWinner = hasWinner
	if hasWinner && int(winner) < len(gs.scores) {
		gs.scores[winner]++
	}
}

// NextRound advances the round counter and returns to Ready
func (gs *GameState) NextRound(now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.round++
	gs.phase = PhaseReady
	gs.phaseStart = now
	gs.hasWinner = false
}

// Winner returns the last round winner, ok is false on a draw or mid-round
func (gs *GameState) Winner() (input.Designation, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.winner, gs.hasWinner
}

// Score returns wins for a designation
func (gs *GameState) Score(who input.Designation) int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if int(who) >= len(gs.scores) {
		return 0
	}
	return gs.scores[who]
}

// Reset clears scores and starts over at round 1
func (gs *GameState) Reset(now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.phase = PhaseReady
	gs.phaseStart = now
	gs.round = 1
	gs.scores = [input.MaxPlayers]int{}
	gs.hasWinner = false
}
