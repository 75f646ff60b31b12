package systems

import (
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/gamemath"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates all positions by the tick delta: the player
// from its intent, every enemy and pickup from its velocity. Enemies
// that drift past the cull margin are destroyed to free the live cap.
func UpdateMovement(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Running {
		return
	}
	clock := GetOrCreateClock(e)
	dt := clock.Delta.Seconds()
	if dt <= 0 {
		return
	}

	movePlayer(e, session.Variant, dt)
	integrateLinear(e, dt)
	cullEnemies(e, session.Variant)
}

func movePlayer(e *ecs.ECS, v *cfg.VariantConfig, dt float64) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	halfW := v.PlayerWidth(player.Aspect) / 2
	halfH := v.PlayerHeight() / 2

	switch v.Geometry {
	case cfg.SpawnEdges:
		// Free movement over the whole plaza. The pointer steers
		// directly when active; keys move at the variant speed.
		input := getOrCreateInput(e)
		if input.PointerActive {
			pos.X = input.PointerX
			pos.Y = input.PointerY
		} else {
			pos.X += player.MoveX * v.MoveSpeed * dt
			pos.Y += player.MoveY * v.MoveSpeed * dt
		}
		pos.Y = gamemath.Clamp(pos.Y, halfH, h-halfH)

	case cfg.SpawnGroundScroll:
		pos.X += player.MoveX * v.MoveSpeed * dt
		applyGravity(e, player, pos, v, halfH, dt)

	default: // SpawnFall
		pos.X += player.MoveX * v.MoveSpeed * dt
		pos.Y = v.FloorY - halfH
	}

	pos.X = gamemath.Clamp(pos.X, halfW, w-halfW)
	player.JumpQueued = false
}

// applyGravity runs the jump arc for grounded variants: a queued jump
// launches from the floor, gravity pulls the rest of the way down, and
// landing snaps back to the ground line.
func applyGravity(e *ecs.ECS, player *components.PlayerData, pos *components.PositionData, v *cfg.VariantConfig, halfH, dt float64) {
	groundY := v.FloorY - halfH

	if player.JumpQueued && player.Grounded {
		player.VelY = -v.JumpSpeed
		player.Grounded = false
		PlaySFX(e, cfg.SoundJump)
	}

	if !player.Grounded {
		player.VelY += v.Gravity * dt
		pos.Y += player.VelY * dt
		if pos.Y >= groundY {
			pos.Y = groundY
			player.VelY = 0
			player.Grounded = true
		}
	} else {
		pos.Y = groundY
	}
}

func integrateLinear(e *ecs.ECS, dt float64) {
	components.Velocity.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		pos := components.Position.Get(entry)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}

func cullEnemies(e *ecs.ECS, v *cfg.VariantConfig) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	m := v.CullMargin

	var toRemove []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.X < -m || pos.X > w+m || pos.Y < -m || pos.Y > h+m {
			toRemove = append(toRemove, entry)
		}
	})
	for _, entry := range toRemove {
		destroyEntity(e, entry)
	}
}
