package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Simulation
// systems only append to PendingSFX; the audio system drains the queue
// and talks to the ebiten audio context, so the sim stays headless.
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// QueueSFX enqueues a sound effect for the audio system to play.
func (a *AudioData) QueueSFX(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}
