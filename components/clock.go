package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the session's virtual clock (singleton component).
// Now only advances while the session is unpaused, so every timestamp
// comparison downstream (spawn arming, effect expiry, remaining time,
// resolve delay) is pause-transparent. Nothing in the simulation counts
// frames; this clock is the single time source.
type ClockData struct {
	Now      time.Time     // current virtual time
	Delta    time.Duration // advance applied by the latest tick
	Paused   bool
	WallPrev time.Time // wall-clock reading of the previous tick
}

var Clock = donburi.NewComponentType[ClockData]()
