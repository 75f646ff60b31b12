package components

import (
	"github.com/tanema/gween"
	"github.com/voidwhale/spraydash/assets"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WorldmapData stores the district map cursor state (singleton component)
type WorldmapData struct {
	Stations  []assets.Station
	WalkPaths [][]math.Vec2
	Selected  int

	// Cursor glides between stations via a pair of tweens, one per axis.
	CursorX, CursorY float64
	TweenX, TweenY   *gween.Tween
}

var Worldmap = donburi.NewComponentType[WorldmapData]()
