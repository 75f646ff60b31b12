package components

import (
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions (singleton component). JustPressed/JustReleased are computed
// on demand by comparing frames. Pointer fields feed the free-movement
// variants: PointerActive is set while the cursor has moved recently.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	PointerX      float64
	PointerY      float64
	PointerActive bool
}

var Input = donburi.NewComponentType[InputData]()
