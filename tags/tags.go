package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
	PointItem   = donburi.NewTag().SetName("PointItem")
)

// Resolv tags for the broad-phase collision space
const (
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvCollectible = "Collectible"
	ResolvPointItem   = "PointItem"
)
