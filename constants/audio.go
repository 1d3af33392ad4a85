package constants

import "time"

// Audio Engine Constants
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is linear gain in [0, 1]
	DefaultMasterVolume = 0.5
)

// Engine Hum
const (
	EngineHumFrequency = 55.0
	EngineHumVolume    = -2.5 // Base-2 exponent, quiet background
)

// Turn Blip
const (
	TurnBlipFrequency = 880.0
	TurnBlipDuration  = 40 * time.Millisecond
	TurnBlipAttack    = 2 * time.Millisecond
	TurnBlipRelease   = 25 * time.Millisecond
)

// Crash Noise
const (
	CrashDuration = 450 * time.Millisecond
	CrashAttack   = 5 * time.Millisecond
	CrashRelease  = 400 * time.Millisecond
)

// Round Chime
const (
	ChimeNote1Frequency = 523.25 // C5
	ChimeNote2Frequency = 783.99 // G5
	ChimeNoteDuration   = 180 * time.Millisecond
	ChimeAttack         = 5 * time.Millisecond
	ChimeRelease        = 140 * time.Millisecond
)
