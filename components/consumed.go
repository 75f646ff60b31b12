package components

import "github.com/yohamta/donburi"

// ConsumedData marks a pickup entity as touched by the player this tick.
// The effect controller applies the pickup (heal or score) and destroys
// the entity, which frees the slot for the spawner.
type ConsumedData struct{}

var Consumed = donburi.NewComponentType[ConsumedData]()
