package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's broad-phase box in the session's resolv
// space. The box is kept centered on Position by the object sync system;
// narrow-phase shapes are derived separately at test time.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
