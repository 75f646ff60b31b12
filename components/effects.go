package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AuraID identifies which pickup aura is glowing behind the player
type AuraID int

const (
	AuraNone AuraID = iota
	AuraHeart
	AuraPoint
)

// EffectsData tracks the player's active status effect windows. Every
// window is an absolute expiry timestamp against the session clock: an
// effect is active iff now is before its Until, and expiry needs no
// bookkeeping. Only the invulnerability window feeds back into the
// simulation; the rest are advisory to the renderer.
type EffectsData struct {
	InvulnerableUntil time.Time
	FlickerUntil      time.Time
	ShakeUntil        time.Time
	ShakeStartedAt    time.Time
	TintUntil         time.Time

	AuraKind      AuraID
	AuraStartedAt time.Time
	AuraUntil     time.Time
}

var Effects = donburi.NewComponentType[EffectsData]()

// Invulnerable reports whether the post-hit grace window is active.
func (e *EffectsData) Invulnerable(now time.Time) bool {
	return now.Before(e.InvulnerableUntil)
}

// FlickerActive reports whether the hit flicker is still running.
func (e *EffectsData) FlickerActive(now time.Time) bool {
	return now.Before(e.FlickerUntil)
}

// ShakeActive reports whether the screen shake is still running.
func (e *EffectsData) ShakeActive(now time.Time) bool {
	return now.Before(e.ShakeUntil)
}

// TintActive reports whether the hit overlay is still showing.
func (e *EffectsData) TintActive(now time.Time) bool {
	return now.Before(e.TintUntil)
}

// AuraActive reports whether a pickup aura is still glowing.
func (e *EffectsData) AuraActive(now time.Time) bool {
	return e.AuraKind != AuraNone && now.Before(e.AuraUntil)
}
