package factory

import (
	"math/rand"
	"time"

	"github.com/voidwhale/spraydash/archetypes"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession builds the singleton run entity for one minigame. The
// variant policy is copied so per-session adjustments (resolved visual
// aspects) never leak into the shared config. The seed drives every
// random draw for the run.
func CreateSession(ecs *ecs.ECS, variant *cfg.VariantConfig, characterID string, seed int64, now time.Time) *donburi.Entry {
	v := *variant
	v.EnemyKinds = append([]cfg.EnemyKindConfig(nil), variant.EnemyKinds...)

	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Variant:     &v,
		Hearts:      cfg.Session.StartHearts,
		MaxHearts:   cfg.Session.MaxHearts,
		StartedAt:   now,
		Running:     true,
		CharacterID: characterID,
	})
	components.Spawner.SetValue(session, components.SpawnerData{
		Rng: rand.New(rand.NewSource(seed)),
	})

	return session
}
