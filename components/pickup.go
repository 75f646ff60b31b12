package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PickupCategory separates the two pickup slots
type PickupCategory int

const (
	CategoryCollectible PickupCategory = iota
	CategoryPoint
)

// PickupData describes a live collectible or point item. At most one of
// each category exists at a time; the spawner re-arms a slot only after
// its entity is gone.
type PickupData struct {
	Category  PickupCategory
	Kind      string
	Visual    string
	Size      float64
	SpawnedAt time.Time
}

var Pickup = donburi.NewComponentType[PickupData]()
