package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/light-cycle/constants"
)

// SoundManager manages all game audio
// Every method is safe to call before Initialize or after a failed one
type SoundManager struct {
	mu           sync.Mutex
	cfg          *AudioConfig
	mixer        *beep.Mixer
	master       *effects.Volume
	engineStream *beep.Ctrl
	initialized  bool
	muted        bool
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()

	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker; a missing device returns an error and leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	sm.master.Silent = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.engineStream != nil {
		sm.engineStream.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.engineStream = nil
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or restores output without stopping streams
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.master.Silent = muted
	speaker.Unlock()
}

// ToggleMute flips mute, returns true if now muted
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.IsMuted()
	sm.SetMuted(muted)
	return muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// StartEngine starts the engine hum, no-op if already playing
func (sm *SoundManager) StartEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.engineStream != nil {
		sm.engineStream.Paused = false
		return
	}
	sm.engineStream = &beep.Ctrl{Streamer: CreateEngineHum(sm.cfg)}
	sm.mixer.Add(sm.engineStream)
}

// StopEngine pauses the engine hum
func (sm *SoundManager) StopEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.engineStream == nil {
		return
	}
	speaker.Lock()
	sm.engineStream.Paused = true
	speaker.Unlock()
}

// PlayTurn plays the heading change blip
func (sm *SoundManager) PlayTurn() {
	sm.play(SoundTurn)
}

// PlayCrash plays the crash noise
func (sm *SoundManager) PlayCrash() {
	sm.play(SoundCrash)
}

// PlayRoundOver plays the round result chime
func (sm *SoundManager) PlayRoundOver() {
	sm.play(SoundRoundOver)
}

func (sm *SoundManager) play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
