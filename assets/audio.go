package assets

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/voidwhale/spraydash/config"
)

// The game ships no recorded audio. Every effect is a short synthesized
// tone rendered to PCM on first use and cached, which keeps the binary
// free of sound files and the output deterministic.

type waveKind int

const (
	waveSine waveKind = iota
	waveSquare
	waveSaw
	waveNoise
)

// toneRecipe describes one synthesized effect.
type toneRecipe struct {
	Wave     waveKind
	Freq     float64 // Hz at note start
	EndFreq  float64 // Hz at note end, 0 = no slide
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

var sfxRecipes = map[cfg.SoundID]toneRecipe{
	cfg.SoundHit: {
		Wave: waveSaw, Freq: 220, EndFreq: 90,
		Duration: 140 * time.Millisecond,
		Attack:   2 * time.Millisecond, Release: 60 * time.Millisecond,
		Volume: 0.9,
	},
	cfg.SoundHeart: {
		Wave: waveSine, Freq: 660, EndFreq: 990,
		Duration: 160 * time.Millisecond,
		Attack:   5 * time.Millisecond, Release: 70 * time.Millisecond,
		Volume: 0.7,
	},
	cfg.SoundPoint: {
		Wave: waveSquare, Freq: 880, EndFreq: 1175,
		Duration: 70 * time.Millisecond,
		Attack:   2 * time.Millisecond, Release: 30 * time.Millisecond,
		Volume: 0.5,
	},
	cfg.SoundJump: {
		Wave: waveSine, Freq: 330, EndFreq: 620,
		Duration: 90 * time.Millisecond,
		Attack:   3 * time.Millisecond, Release: 40 * time.Millisecond,
		Volume: 0.6,
	},
	cfg.SoundWin: {
		Wave: waveSquare, Freq: 523, EndFreq: 1046,
		Duration: 320 * time.Millisecond,
		Attack:   5 * time.Millisecond, Release: 140 * time.Millisecond,
		Volume: 0.6,
	},
	cfg.SoundLose: {
		Wave: waveSaw, Freq: 440, EndFreq: 110,
		Duration: 420 * time.Millisecond,
		Attack:   5 * time.Millisecond, Release: 180 * time.Millisecond,
		Volume: 0.7,
	},
	cfg.SoundMenuNavigate: {
		Wave: waveSquare, Freq: 660,
		Duration: 40 * time.Millisecond,
		Attack:   2 * time.Millisecond, Release: 15 * time.Millisecond,
		Volume: 0.4,
	},
	cfg.SoundMenuSelect: {
		Wave: waveSquare, Freq: 880, EndFreq: 1320,
		Duration: 90 * time.Millisecond,
		Attack:   2 * time.Millisecond, Release: 35 * time.Millisecond,
		Volume: 0.5,
	},
}

// Synthesize renders the recipe for id to 16-bit little-endian stereo
// PCM at the given sample rate. Returns nil for an unknown id.
func Synthesize(id cfg.SoundID, sampleRate int) []byte {
	recipe, ok := sfxRecipes[id]
	if !ok {
		return nil
	}

	n := int(float64(sampleRate) * recipe.Duration.Seconds())
	if n <= 0 {
		return nil
	}
	attack := int(float64(sampleRate) * recipe.Attack.Seconds())
	release := int(float64(sampleRate) * recipe.Release.Seconds())

	buf := make([]byte, 0, n*4)
	phase := 0.0
	noise := uint32(0x2545f491)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := recipe.Freq
		if recipe.EndFreq > 0 {
			freq = recipe.Freq + (recipe.EndFreq-recipe.Freq)*t
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var s float64
		switch recipe.Wave {
		case waveSquare:
			if math.Sin(phase) >= 0 {
				s = 1
			} else {
				s = -1
			}
		case waveSaw:
			s = 2*math.Mod(phase/(2*math.Pi), 1) - 1
		case waveNoise:
			noise = noise*1664525 + 1013904223
			s = float64(int32(noise))/math.MaxInt32*0.5 + math.Sin(phase)*0.5
		default:
			s = math.Sin(phase)
		}

		s *= envelope(i, n, attack, release) * recipe.Volume
		v := int16(s * 28000)
		buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
	}

	return buf
}

// envelope is a linear attack/release ramp around a sustained middle.
func envelope(i, n, attack, release int) float64 {
	gain := 1.0
	if attack > 0 && i < attack {
		gain = float64(i) / float64(attack)
	}
	if release > 0 && i >= n-release {
		tail := float64(n-i) / float64(release)
		if tail < gain {
			gain = tail
		}
	}
	return gain
}

// AudioLoader renders and caches the synthesized sound effects
type AudioLoader struct {
	pcmCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		pcmCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a
// player. Call this at startup to avoid synth lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.pcmCache[id]; ok {
		return nil
	}

	pcm := Synthesize(id, l.context.SampleRate())
	if pcm == nil {
		return fmt.Errorf("no recipe for sound %d", id)
	}

	l.pcmCache[id] = pcm
	return nil
}

// LoadSFX returns a fresh player for the effect so overlapping plays
// don't cut each other off. PCM is cached after the first render.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.pcmCache[id]))
}
