package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// SpawnerData holds the arming deadlines for entity spawning (lives on the
// session entity). A deadline is armed when its flag is set; the spawner
// fires when the clock reaches it and re-arms (enemies) or disarms until
// the slot frees up again (pickups).
type SpawnerData struct {
	NextEnemyAt time.Time
	EnemyArmed  bool

	NextCollectibleAt time.Time
	CollectibleArmed  bool

	NextPointAt time.Time
	PointArmed  bool

	// Rng drives every random draw for the session: spawn positions,
	// kind selection, interval jitter. Seeded at session creation so
	// tests can inject a fixed seed.
	Rng *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
