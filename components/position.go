package components

import "github.com/yohamta/donburi"

// PositionData is an entity's center in play-area pixels
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()
