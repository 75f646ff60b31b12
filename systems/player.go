package systems

import (
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerIntent translates polled input into this tick's movement
// intent. Runs after UpdateInput and before UpdateMovement so the
// integrator always sees a fresh intent.
func UpdatePlayerIntent(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Running {
		return
	}
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	player := components.Player.Get(entry)

	var mx, my float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		mx -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		mx += 1
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		my -= 1
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		my += 1
	}
	player.MoveX = mx
	player.MoveY = my

	if GetAction(input, cfg.ActionJump).JustPressed {
		player.JumpQueued = true
	}
}
