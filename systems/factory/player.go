package factory

import (
	"github.com/solarlune/resolv"
	"github.com/voidwhale/spraydash/archetypes"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the writer at (x, y) center. The broad-phase box
// matches the derived sprite box; aspect comes from the resolved visual
// (pass 0 to fall back to the variant's configured aspect).
func CreatePlayer(ecs *ecs.ECS, v *cfg.VariantConfig, characterID string, aspect, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	if aspect <= 0 {
		aspect = v.PlayerAspect
	}
	h := v.PlayerHeight()
	w := v.PlayerWidth(aspect)

	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Position.SetValue(player, components.PositionData{X: x, Y: y})

	character := cfg.CharacterByID(characterID)
	components.Player.SetValue(player, components.PlayerData{
		CharacterID: character.ID,
		Visual:      character.Visual,
		Aspect:      aspect,
		Grounded:    true,
	})
	components.Effects.SetValue(player, components.EffectsData{})

	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}

	return player
}

// getSpace returns the session's resolv space, or nil before one exists
func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}
