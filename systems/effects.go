package systems

import (
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects applies the consequences of this tick's contacts: a hit
// event costs a heart and opens the feedback windows, consumed pickups
// heal or score and then despawn. Expiry needs no work here since every
// window is an absolute timestamp the readers compare against.
func UpdateEffects(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Running {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	now := GetOrCreateClock(e).Now
	effects := components.Effects.Get(playerEntry)

	if playerEntry.HasComponent(components.HitEvent) {
		applyHit(e, session, effects, now)
		playerEntry.RemoveComponent(components.HitEvent)
	}

	var consumed []*donburi.Entry
	components.Consumed.Each(e.World, func(entry *donburi.Entry) {
		consumed = append(consumed, entry)
	})
	for _, entry := range consumed {
		applyPickup(e, session, effects, components.Pickup.Get(entry), now)
		destroyEntity(e, entry)
	}
}

func applyHit(e *ecs.ECS, session *components.SessionData, effects *components.EffectsData, now time.Time) {
	session.Hearts--
	if session.Hearts < 0 {
		session.Hearts = 0
	}

	// A window still running from an earlier hit is left alone.
	if !now.Before(effects.FlickerUntil) {
		effects.FlickerUntil = now.Add(cfg.Effects.Flicker)
	}
	if !now.Before(effects.ShakeUntil) {
		effects.ShakeStartedAt = now
		effects.ShakeUntil = now.Add(cfg.Effects.Shake)
	}
	if !now.Before(effects.TintUntil) {
		effects.TintUntil = now.Add(cfg.Effects.Tint)
	}

	PlaySFX(e, cfg.SoundHit)
}

func applyPickup(e *ecs.ECS, session *components.SessionData, effects *components.EffectsData, pickup *components.PickupData, now time.Time) {
	switch pickup.Category {
	case components.CategoryCollectible:
		session.Hearts += cfg.Session.CollectibleHeal
		if session.Hearts > session.MaxHearts {
			session.Hearts = session.MaxHearts
		}
		startAura(effects, components.AuraHeart, now)
		PlaySFX(e, cfg.SoundHeart)

	case components.CategoryPoint:
		if session.Variant.Accrual == cfg.AccruePickups {
			session.Score += session.Variant.PointValue
		}
		startAura(effects, components.AuraPoint, now)
		PlaySFX(e, cfg.SoundPoint)
	}
}

// startAura begins a glow only when the previous one has expired, so
// rapid pickups don't strobe.
func startAura(effects *components.EffectsData, kind components.AuraID, now time.Time) {
	if effects.AuraActive(now) {
		return
	}
	effects.AuraKind = kind
	effects.AuraStartedAt = now
	effects.AuraUntil = now.Add(cfg.Effects.Aura)
}
