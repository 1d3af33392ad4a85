package audio

import "github.com/lixenwraith/light-cycle/constants"

// AudioConfig holds audio settings, volumes are linear in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundTurn:      0.6,
			SoundCrash:     1.0,
			SoundRoundOver: 0.8,
			SoundEngine:    0.4,
		},
	}
}

// Normalize clamps volumes and fills missing entries from defaults
func (c *AudioConfig) Normalize() {
	def := DefaultAudioConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	c.MasterVolume = clamp01(c.MasterVolume)
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64, len(def.EffectVolumes))
	}
	for s, v := range def.EffectVolumes {
		if _, ok := c.EffectVolumes[s]; !ok {
			c.EffectVolumes[s] = v
		}
	}
	for s, v := range c.EffectVolumes {
		c.EffectVolumes[s] = clamp01(v)
	}
}

// Volume returns the effective linear gain of a sound
func (c *AudioConfig) Volume(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
