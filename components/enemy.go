package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// EnemyData describes one live obstacle. SpawnedAt anchors the derived
// spin angle: rotation is a pure function of (now - SpawnedAt) and
// SpinRate, never integrated per tick.
type EnemyData struct {
	Kind      string
	Visual    string
	Size      float64 // logical size in pixels (height for boxes, diameter for circles)
	Aspect    float64 // width/height for the derived hitbox
	SpinRate  float64 // radians per second
	SpawnedAt time.Time
}

var Enemy = donburi.NewComponentType[EnemyData]()
