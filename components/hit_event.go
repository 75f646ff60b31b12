package components

import "github.com/yohamta/donburi"

// HitEventData marks the player entity as hit this tick. The effect
// controller consumes it (heart loss plus the hit feedback windows) and
// removes it; at most one is filed per tick since the collision detector
// arms invulnerability on the first confirmed hit.
type HitEventData struct {
	EnemyKind string
}

var HitEvent = donburi.NewComponentType[HitEventData]()
