package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/gamemath"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}

// DrawDebug renders the collision overlay: broad-phase boxes from the
// resolv space, plus the exact shapes contacts are decided on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	// Broad-phase boxes, colored by tag
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvCollectible) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvPointItem) {
				c = color.RGBA{255, 255, 0, 255} // Yellow
			}

			// Draw outline
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(obj.X), float32(obj.Y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(obj.X+obj.W-1), float32(obj.Y), 1, float32(obj.H), c, false) // Right
		}
	}

	session := GetSession(e)
	if session == nil {
		return
	}
	drawNarrowShapes(e, screen, session.Variant)
	drawSpawnerState(e, screen, session)
}

// drawNarrowShapes outlines the derived shapes the narrow phase tests,
// which are smaller than the broad-phase boxes around them.
func drawNarrowShapes(e *ecs.ECS, screen *ebiten.Image, v *cfg.VariantConfig) {
	white := color.RGBA{255, 255, 255, 255}

	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		pos := components.Position.Get(playerEntry)
		if v.Shape == cfg.HitCircle {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				float32(v.PlayerRadius(player.Aspect)), 1, white, true)
		} else {
			strokeRect(screen, playerHitRect(v, player, pos), white)
		}
	}

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)
		if v.Shape == cfg.HitCircle {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				float32(v.ObstacleRadius(enemy.Size)), 1, white, true)
		} else {
			strokeRect(screen, enemyHitRect(enemy, pos), white)
		}
	})

	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		pos := components.Position.Get(entry)
		if v.Shape == cfg.HitCircle {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				float32(v.ObstacleRadius(pickup.Size)), 1, white, true)
		} else {
			strokeRect(screen, gamemath.RectAround(pos.X, pos.Y, pickup.Size, pickup.Size), white)
		}
	})
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

func drawSpawnerState(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	spawner := GetSpawner(e)
	if spawner == nil {
		return
	}
	now := GetOrCreateClock(e).Now

	status := fmt.Sprintf("enemies %d/%d  hearts-slot %s  points-slot %s",
		countTag(e, tags.Enemy), session.Variant.MaxEnemies,
		slotState(spawner.CollectibleArmed, spawner.NextCollectibleAt.Sub(now).Seconds()),
		slotState(spawner.PointArmed, spawner.NextPointAt.Sub(now).Seconds()))
	ebitenutil.DebugPrintAt(screen, status, 4, cfg.C.Height-16)
}

func slotState(armed bool, secondsLeft float64) string {
	if !armed {
		return "idle"
	}
	return fmt.Sprintf("%.1fs", secondsLeft)
}
