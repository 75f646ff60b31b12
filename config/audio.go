package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundHit
	SoundHeart
	SoundPoint
	SoundJump
	SoundWin
	SoundLose
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig tunes individual effects
type SoundConfig struct {
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:  1.3,
			SoundLose: 1.2,
		},
	}
}
