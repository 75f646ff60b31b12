package systems

import (
	"github.com/voidwhale/spraydash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-centers every broad-phase box on its entity's
// position and pushes the move into the resolv space. Runs after the
// integrator and before the collision detector.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		pos := components.Position.Get(entry)
		obj.X = pos.X - obj.W/2
		obj.Y = pos.Y - obj.H/2
		obj.Update()
	})
}

// destroyEntity removes an entity and its broad-phase box in one step.
// Every despawn path (cull, consume, enemy hit) funnels through here so
// the resolv space never holds a box for a dead entity.
func destroyEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
