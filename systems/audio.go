package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/voidwhale/spraydash/assets"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool    = !cfg.Settings.DefaultSound
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup to avoid synth
// lag on first play. This is especially important for WASM.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, id := range []cfg.SoundID{
		cfg.SoundHit, cfg.SoundHeart, cfg.SoundPoint, cfg.SoundJump,
		cfg.SoundWin, cfg.SoundLose, cfg.SoundMenuNavigate, cfg.SoundMenuSelect,
	} {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio drains the pending SFX queue. This is the only system
// that touches the audio device, so the simulation stays playable (and
// testable) without one.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.Context = globalAudioContext
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played by the next UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	GetOrCreateAudio(e).QueueSFX(sound)
}

// SetMuted toggles all sound output (persisted via settings)
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted returns whether sound output is off
func IsMuted() bool {
	return globalMuted
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// SFXVolume returns the current SFX volume
func SFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component, creating it if
// needed. The audio context is attached lazily by UpdateAudio so queueing
// sounds never initializes a device.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
