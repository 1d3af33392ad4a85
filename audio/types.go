package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundTurn      SoundType = iota // Heading change blip
	SoundCrash                      // Cycle destroyed
	SoundRoundOver                  // Round result chime
	SoundEngine                     // Looping hum while a round runs
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTurn:
		return "turn"
	case SoundCrash:
		return "crash"
	case SoundRoundOver:
		return "round_over"
	case SoundEngine:
		return "engine"
	}
	return "unknown"
}

// ParseSoundType maps a config key to a SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
