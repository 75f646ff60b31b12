package components

import "github.com/yohamta/donburi"

// PlayerData is the player's body state plus the movement intent written
// by the intent system each tick. MoveX/MoveY are normalized to [-1, 1];
// JumpQueued is consumed by the integrator on the same tick.
type PlayerData struct {
	CharacterID string
	Visual      string
	Aspect      float64 // resolved width/height for the derived hitbox

	MoveX      float64
	MoveY      float64
	JumpQueued bool

	// Gravity variants only
	VelY     float64
	Grounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
