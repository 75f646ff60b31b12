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

// CreateEnemy spawns one obstacle at (x, y) center moving at (vx, vy).
// Size is the box height (or circle diameter); width follows the kind's
// effective aspect.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKindConfig, size float64, x, y, vx, vy float64, now time.Time) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	aspect := kind.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	w := size * aspect
	h := size

	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Position.SetValue(enemy, components.PositionData{X: x, Y: y})
	components.Velocity.SetValue(enemy, components.VelocityData{X: vx, Y: vy})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      kind.Name,
		Visual:    kind.Visual,
		Size:      size,
		Aspect:    aspect,
		SpinRate:  kind.SpinRate,
		SpawnedAt: now,
	})

	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}

	return enemy
}
