package systems

import (
	"math"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/gamemath"
	"github.com/voidwhale/spraydash/systems/factory"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner runs the timestamp-armed spawn schedule. Enemies re-arm
// after every attempt (a spawn skipped at the live cap just waits for
// the next window); each pickup slot holds at most one live entity and
// re-arms only after its slot empties.
func UpdateSpawner(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Running {
		return
	}
	spawner := GetSpawner(e)
	if spawner == nil || spawner.Rng == nil {
		return
	}

	now := GetOrCreateClock(e).Now
	v := session.Variant

	updateEnemySpawns(e, v, spawner, now)
	updatePickupSlot(e, v, spawner, now, components.CategoryCollectible)
	updatePickupSlot(e, v, spawner, now, components.CategoryPoint)
}

func updateEnemySpawns(e *ecs.ECS, v *cfg.VariantConfig, spawner *components.SpawnerData, now time.Time) {
	if len(v.EnemyKinds) == 0 {
		return
	}

	if !spawner.EnemyArmed {
		spawner.NextEnemyAt = now.Add(v.EnemyRespawnInterval(spawner.Rng))
		spawner.EnemyArmed = true
		return
	}
	if now.Before(spawner.NextEnemyAt) {
		return
	}

	if countTag(e, tags.Enemy) < v.MaxEnemies {
		spawnEnemy(e, v, spawner, now)
	}
	spawner.NextEnemyAt = now.Add(v.EnemyRespawnInterval(spawner.Rng))
}

func spawnEnemy(e *ecs.ECS, v *cfg.VariantConfig, spawner *components.SpawnerData, now time.Time) {
	rng := spawner.Rng

	weights := make([]float64, len(v.EnemyKinds))
	for i, kind := range v.EnemyKinds {
		weights[i] = kind.Weight
	}
	idx := gamemath.WeightedIndex(weights, rng.Float64())
	if idx < 0 {
		return
	}
	kind := v.EnemyKinds[idx]

	size := v.SizeMin + rng.Float64()*(v.SizeMax-v.SizeMin)
	x, y, vx, vy := enemyPlacement(v, size, rng)
	factory.CreateEnemy(e, kind, size, x, y, vx, vy, now)
}

// enemyPlacement picks the entry point and velocity for the variant's
// spawn geometry.
func enemyPlacement(v *cfg.VariantConfig, size float64, rng randSource) (x, y, vx, vy float64) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	half := size / 2

	switch v.Geometry {
	case cfg.SpawnEdges:
		// A random point on a random edge, aimed at a jittered center.
		switch rng.Intn(4) {
		case 0: // top
			x, y = rng.Float64()*w, -v.SpawnMargin-half
		case 1: // bottom
			x, y = rng.Float64()*w, h+v.SpawnMargin+half
		case 2: // left
			x, y = -v.SpawnMargin-half, rng.Float64()*h
		default: // right
			x, y = w+v.SpawnMargin+half, rng.Float64()*h
		}
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * v.CenterJitter
		aimX := w/2 + math.Cos(angle)*radius
		aimY := h/2 + math.Sin(angle)*radius
		dx, dy := gamemath.Normalize(aimX-x, aimY-y)
		vx, vy = dx*v.EnemySpeed, dy*v.EnemySpeed

	case cfg.SpawnGroundScroll:
		x = w + v.SpawnMargin + half
		y = v.FloorY - half
		vx, vy = -v.EnemySpeed, 0

	default: // SpawnFall
		x = half + rng.Float64()*(w-size)
		y = -v.SpawnMargin - half
		vx, vy = 0, v.EnemySpeed
	}
	return
}

func updatePickupSlot(e *ecs.ECS, v *cfg.VariantConfig, spawner *components.SpawnerData, now time.Time, category components.PickupCategory) {
	delay := v.CollectibleDelay
	kinds := v.Collectibles
	tag := tags.Collectible
	armed := &spawner.CollectibleArmed
	nextAt := &spawner.NextCollectibleAt
	if category == components.CategoryPoint {
		delay = v.PointDelay
		kinds = v.Points
		tag = tags.PointItem
		armed = &spawner.PointArmed
		nextAt = &spawner.NextPointAt
	}

	// A zero delay or an empty kind list disables the slot entirely.
	if delay <= 0 || len(kinds) == 0 {
		return
	}

	// Slot occupied: stay disarmed until the entity is consumed or culled.
	if countTag(e, tag) > 0 {
		*armed = false
		return
	}

	if !*armed {
		*nextAt = now.Add(delay)
		*armed = true
		return
	}
	if now.Before(*nextAt) {
		return
	}

	kind := kinds[spawner.Rng.Intn(len(kinds))]
	x, y, vx, vy := pickupPlacement(v, kind.Size, spawner.Rng)
	factory.CreatePickup(e, category, kind, x, y, vx, vy, now)
	*armed = false
}

// pickupPlacement mirrors the enemy geometry: falling variants drop
// pickups from the top, scrolling variants float them in from the right
// inside the jump band, and edge variants place them statically.
func pickupPlacement(v *cfg.VariantConfig, size float64, rng randSource) (x, y, vx, vy float64) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	half := size / 2

	switch v.Geometry {
	case cfg.SpawnGroundScroll:
		x = w + v.SpawnMargin + half
		alt := v.PointAltMin + rng.Float64()*(v.PointAltMax-v.PointAltMin)
		y = v.FloorY - alt
		vx, vy = -v.PickupSpeed, 0

	case cfg.SpawnEdges:
		x = w*0.2 + rng.Float64()*w*0.6
		y = h*0.2 + rng.Float64()*h*0.6

	default: // SpawnFall
		x = half + rng.Float64()*(w-size)
		y = -v.SpawnMargin - half
		vx, vy = 0, v.PickupSpeed
	}
	return
}

// randSource is the subset of math/rand used by placement, split out so
// placement stays trivially testable.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// countTag counts live entities carrying the tag
func countTag(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

// GetSession returns the session singleton, or nil before one exists
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetSpawner returns the spawner singleton, or nil before one exists
func GetSpawner(e *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(e.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}
