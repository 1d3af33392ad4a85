package systems

import (
	"github.com/lixenwraith/light-cycle/engine"
)

// SoundPlayer is the subset of the sound manager the game drives
type SoundPlayer interface {
	StartEngine()
	StopEngine()
	PlayTurn()
	PlayCrash()
	PlayRoundOver()
}

// AudioSystem turns game events into sounds
// Decouples game systems from direct sound manager access
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio system; player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventPlayerTurned,
		engine.EventPlayerCrashed,
		engine.EventRoundStarted,
		engine.EventRoundOver,
	}
}

// HandleEvent plays the sound for one event
func (s *AudioSystem) HandleEvent(world *engine.World, event engine.GameEvent) {
	if s.player == nil {
		return
	}
	switch event.Type {
	case engine.EventPlayerTurned:
		s.player.PlayTurn()
	case engine.EventPlayerCrashed:
		s.player.PlayCrash()
	case engine.EventRoundStarted:
		s.player.StartEngine()
	case engine.EventRoundOver:
		s.player.StopEngine()
		s.player.PlayRoundOver()
	}
}
