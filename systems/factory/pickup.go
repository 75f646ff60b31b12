package factory

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/voidwhale/spraydash/archetypes"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickup spawns a collectible or point item at (x, y) center.
// Pickups use a square box sized by the kind config.
func CreatePickup(ecs *ecs.ECS, category components.PickupCategory, kind cfg.PickupKindConfig, x, y, vx, vy float64, now time.Time) *donburi.Entry {
	arch := archetypes.Collectible
	tag := tags.ResolvCollectible
	if category == components.CategoryPoint {
		arch = archetypes.PointItem
		tag = tags.ResolvPointItem
	}

	pickup := arch.Spawn(ecs)

	obj := resolv.NewObject(x-kind.Size/2, y-kind.Size/2, kind.Size, kind.Size)
	obj.AddTags(tag)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})

	components.Position.SetValue(pickup, components.PositionData{X: x, Y: y})
	components.Velocity.SetValue(pickup, components.VelocityData{X: vx, Y: vy})
	components.Pickup.SetValue(pickup, components.PickupData{
		Category:  category,
		Kind:      kind.Name,
		Visual:    kind.Visual,
		Size:      kind.Size,
		SpawnedAt: now,
	})

	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}

	return pickup
}
