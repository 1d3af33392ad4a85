package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/light-cycle/constants"
)

// drain streams s to the end and returns the sample count, capped at limit
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range waves {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)

			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d expected mono, got %f/%f", i, samples[i][0], samples[i][1])
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	if got, expected := drain(osc, 1<<20), rate.N(10*time.Millisecond); got != expected {
		t.Errorf("Expected %d samples, got %d", expected, got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return 0,false, got %d,%v", n, ok)
	}
}

func TestDroneNeverEnds(t *testing.T) {
	drone := NewDrone(55, WaveSaw, beep.SampleRate(8000))
	if got := drain(drone, 100000); got < 100000 {
		t.Errorf("Expected drone to keep streaming, stopped after %d", got)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // phase 0 -> constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade, got %f then %f", samples[90][0], samples[99][0])
	}
}

func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	tests := []struct {
		sound    SoundType
		expected time.Duration
	}{
		{SoundTurn, constants.TurnBlipDuration},
		{SoundCrash, constants.CrashDuration},
		{SoundRoundOver, 2 * constants.ChimeNoteDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			expected := beep.SampleRate(cfg.SampleRate).N(tt.expected)
			if got := drain(s, expected*4); got != expected {
				t.Errorf("Expected %d samples, got %d", expected, got)
			}
		})
	}

	if GetSoundEffect(SoundEngine, cfg) != nil {
		t.Error("Expected engine hum not to be a one-shot effect")
	}
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	v := newVolume(NewOscillator(440, time.Millisecond, WaveSine, 8000), 0)
	if !v.Silent {
		t.Error("Expected zero volume to be silent")
	}
	v = newVolume(NewOscillator(440, time.Millisecond, WaveSine, 8000), 0.5)
	if v.Silent || math.Abs(v.Volume+1) > 1e-9 {
		t.Errorf("Expected log2(0.5) = -1, got %f", v.Volume)
	}
}
