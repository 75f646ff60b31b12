package systems

import (
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/gamemath"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions runs the two-phase contact test. The resolv space
// supplies broad-phase candidates; exact overlap is decided on shapes
// derived from entity state so the outcome never depends on box drift.
//
// Enemy contacts are skipped wholesale during the invulnerability
// window. The first confirmed hit of a tick arms that window, so at
// most one hit event is filed per tick no matter how many enemies
// overlap. Pickups are collected regardless of invulnerability.
func UpdateCollisions(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Running {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	now := GetOrCreateClock(e).Now
	v := session.Variant
	player := components.Player.Get(playerEntry)
	playerPos := components.Position.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	effects := components.Effects.Get(playerEntry)

	if playerObj.Object == nil {
		return
	}

	if !effects.Invulnerable(now) {
		if check := playerObj.Check(0, 0, tags.ResolvEnemy); check != nil {
			for _, obj := range check.Objects {
				entry, ok := obj.Data.(*donburi.Entry)
				if !ok || !entry.Valid() {
					continue
				}
				enemy := components.Enemy.Get(entry)
				enemyPos := components.Position.Get(entry)
				if !hitsPlayer(v, player, playerPos, enemy, enemyPos) {
					continue
				}

				effects.InvulnerableUntil = now.Add(cfg.Effects.Invulnerability)
				if !playerEntry.HasComponent(components.HitEvent) {
					playerEntry.AddComponent(components.HitEvent)
					components.HitEvent.SetValue(playerEntry, components.HitEventData{EnemyKind: enemy.Kind})
				}
				destroyEntity(e, entry)
				break
			}
		}
	}

	collectPickups(e, v, player, playerPos, playerObj)
	cullPickups(e, v)
}

func collectPickups(e *ecs.ECS, v *cfg.VariantConfig, player *components.PlayerData, playerPos *components.PositionData, playerObj *components.ObjectData) {
	check := playerObj.Check(0, 0, tags.ResolvCollectible, tags.ResolvPointItem)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || entry.HasComponent(components.Consumed) {
			continue
		}
		pickup := components.Pickup.Get(entry)
		pos := components.Position.Get(entry)
		if !touchesPlayer(v, player, playerPos, pickup, pos) {
			continue
		}
		entry.AddComponent(components.Consumed)
	}
}

// cullPickups destroys pickups that drifted off the play area, freeing
// their slot without any pickup effect.
func cullPickups(e *ecs.ECS, v *cfg.VariantConfig) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	m := v.CullMargin

	var toRemove []*donburi.Entry
	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.X < -m || pos.X > w+m || pos.Y < -m || pos.Y > h+m {
			toRemove = append(toRemove, entry)
		}
	})
	for _, entry := range toRemove {
		destroyEntity(e, entry)
	}
}

func hitsPlayer(v *cfg.VariantConfig, player *components.PlayerData, playerPos *components.PositionData, enemy *components.EnemyData, enemyPos *components.PositionData) bool {
	switch v.Shape {
	case cfg.HitCircle:
		return gamemath.CirclesOverlap(
			playerPos.X, playerPos.Y, v.PlayerRadius(player.Aspect),
			enemyPos.X, enemyPos.Y, v.ObstacleRadius(enemy.Size),
		)
	default:
		return playerHitRect(v, player, playerPos).Overlaps(enemyHitRect(enemy, enemyPos))
	}
}

func touchesPlayer(v *cfg.VariantConfig, player *components.PlayerData, playerPos *components.PositionData, pickup *components.PickupData, pickupPos *components.PositionData) bool {
	switch v.Shape {
	case cfg.HitCircle:
		return gamemath.CirclesOverlap(
			playerPos.X, playerPos.Y, v.PlayerRadius(player.Aspect),
			pickupPos.X, pickupPos.Y, v.ObstacleRadius(pickup.Size),
		)
	default:
		rect := gamemath.RectAround(pickupPos.X, pickupPos.Y, pickup.Size, pickup.Size)
		return playerHitRect(v, player, playerPos).Overlaps(rect)
	}
}

// playerHitRect derives the player's exact box from the variant policy
// and the resolved sprite aspect.
func playerHitRect(v *cfg.VariantConfig, player *components.PlayerData, pos *components.PositionData) gamemath.Rect {
	h := v.PlayerHeight()
	w := v.PlayerWidth(player.Aspect)
	return gamemath.RectAround(pos.X, pos.Y, w, h)
}

// enemyHitRect derives an enemy's exact box from its rolled size and
// kind aspect.
func enemyHitRect(enemy *components.EnemyData, pos *components.PositionData) gamemath.Rect {
	h := enemy.Size
	w := enemy.Size * enemy.Aspect
	return gamemath.RectAround(pos.X, pos.Y, w, h)
}
