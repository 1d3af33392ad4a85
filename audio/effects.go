package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/light-cycle/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int // Samples; negative streams forever
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewDrone creates an oscillator that never ends
func NewDrone(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: -1,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateTurnSound generates a short square blip
func CreateTurnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.TurnBlipFrequency, constants.TurnBlipDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.TurnBlipDuration, constants.TurnBlipAttack, constants.TurnBlipRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundTurn))
}

// CreateCrashSound generates a noise burst over a low rumble
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.CrashDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrashDuration, constants.CrashAttack, constants.CrashRelease, rate)

	rumble := NewOscillator(70, constants.CrashDuration, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, constants.CrashDuration, constants.CrashAttack, constants.CrashRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	// Mix never ends on its own
	return newVolume(beep.Take(rate.N(constants.CrashDuration), mixed), cfg.Volume(SoundCrash))
}

// CreateRoundOverSound generates a rising two-note chime
func CreateRoundOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.ChimeNote1Frequency, constants.ChimeNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.ChimeNoteDuration, constants.ChimeAttack, constants.ChimeRelease, rate)

	n2 := NewOscillator(constants.ChimeNote2Frequency, constants.ChimeNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.ChimeNoteDuration, constants.ChimeAttack, constants.ChimeRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(SoundRoundOver))
}

// CreateEngineHum generates the endless low drone of running cycles
func CreateEngineHum(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	base := NewDrone(constants.EngineHumFrequency, WaveSaw, rate)
	fifth := NewDrone(constants.EngineHumFrequency*1.5, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(base, 0.7),
		newVolume(fifth, 0.3),
	)
	return &effects.Volume{
		Streamer: mixed,
		Base:     2,
		Volume:   constants.EngineHumVolume + math.Log2(math.Max(cfg.Volume(SoundEngine), 1e-6)),
		Silent:   cfg.Volume(SoundEngine) <= 0,
	}
}

// GetSoundEffect returns the one-shot streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTurn:
		return CreateTurnSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundRoundOver:
		return CreateRoundOverSound(cfg)
	default:
		return nil
	}
}
