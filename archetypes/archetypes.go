package archetypes

import (
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Effects,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Velocity,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Pickup,
		components.Position,
		components.Velocity,
		components.Object,
	)
	PointItem = newArchetype(
		tags.PointItem,
		components.Pickup,
		components.Position,
		components.Velocity,
		components.Object,
	)
	// Session bundles the run state with its spawner schedule so both
	// reset together when a station restarts.
	Session = newArchetype(
		components.Session,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
