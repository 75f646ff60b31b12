package systems

import (
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock moves the session clock forward to wallNow. Scenes call
// this once per frame before the system tick so every system reads the
// same virtual timestamp.
//
// The clock freezes while paused and clamps large wall deltas (window
// drag, debugger stop) so a stall can never flush a whole session's
// worth of spawns or expire the timer in one tick.
func AdvanceClock(e *ecs.ECS, wallNow time.Time) {
	clock := GetOrCreateClock(e)

	if clock.WallPrev.IsZero() {
		clock.WallPrev = wallNow
		clock.Now = wallNow
		clock.Delta = 0
		return
	}

	delta := wallNow.Sub(clock.WallPrev)
	clock.WallPrev = wallNow

	if delta < 0 {
		delta = 0
	}
	if delta > cfg.Session.MaxTickDelta {
		delta = cfg.Session.MaxTickDelta
	}

	if clock.Paused {
		clock.Delta = 0
		return
	}

	clock.Now = clock.Now.Add(delta)
	clock.Delta = delta
}

// SetClockPaused freezes or resumes the session clock.
func SetClockPaused(e *ecs.ECS, paused bool) {
	GetOrCreateClock(e).Paused = paused
}

// GetOrCreateClock returns the singleton clock component, creating it if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
