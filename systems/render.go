package systems

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwhale/spraydash/assets"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Placeholder sprites are painted once per (visual, size) and reused.
	shapeCache = map[string]*ebiten.Image{}
)

// DrawBackdrop paints the variant's sky gradient and ground band.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}
	theme, ok := cfg.Themes[session.Variant.ID]
	if !ok {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	// Vertical gradient as a handful of lerped strips.
	const strips = 12
	stripH := h / strips
	for i := 0; i < strips; i++ {
		t := float64(i) / (strips - 1)
		vector.DrawFilledRect(screen,
			0, float32(float64(i)*stripH),
			w, float32(stripH+1),
			lerpColor(theme.SkyTop, theme.SkyBottom, t), false)
	}

	if session.Variant.FloorY > 0 {
		floorY := session.Variant.FloorY
		vector.DrawFilledRect(screen,
			0, float32(floorY),
			w, float32(h-floorY),
			theme.GroundColor, false)
	}
}

// DrawEntities renders every live entity from its simulation state:
// pickups bob, enemies spin at their derived angle, the player flickers
// through the post-hit window. The whole world shifts by the shake
// offset while that window runs.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}
	now := GetOrCreateClock(e).Now

	var shakeX, shakeY float64
	if playerEntry, ok := components.Player.First(e.World); ok {
		effects := components.Effects.Get(playerEntry)
		shakeX, shakeY = shakeOffset(effects, now)
	}

	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		pos := components.Position.Get(entry)

		bob := math.Sin(now.Sub(pickup.SpawnedAt).Seconds()*4) * 3
		img := entityImage(pickup.Visual, pickup.Size, pickup.Size)
		drawSprite(screen, img, pos.X+shakeX, pos.Y+bob+shakeY, 0)
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)

		angle := gamemath.SpinAngle(now.Sub(enemy.SpawnedAt).Seconds(), enemy.SpinRate)
		img := entityImage(enemy.Visual, enemy.Size*enemy.Aspect, enemy.Size)
		drawSprite(screen, img, pos.X+shakeX, pos.Y+shakeY, angle)
	})

	drawPlayer(e, screen, session, now, shakeX, shakeY)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData, now time.Time, shakeX, shakeY float64) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	effects := components.Effects.Get(entry)

	v := session.Variant
	w := v.PlayerWidth(player.Aspect)
	h := v.PlayerHeight()

	if effects.AuraActive(now) {
		drawAura(screen, effects, now, pos.X+shakeX, pos.Y+shakeY, w)
	}

	// The flicker window alternates hidden/visible slices.
	if effects.FlickerActive(now) {
		start := effects.FlickerUntil.Add(-cfg.Effects.Flicker)
		slice := int(now.Sub(start) / cfg.Effects.FlickerSlice)
		if slice%2 == 1 {
			return
		}
	}

	img := playerImage(player, v, w, h)
	drawSprite(screen, img, pos.X+shakeX, pos.Y+shakeY, 0)
}

// playerImage resolves the writer's skin: the character-specific file
// first, the variant's generic one next, then a placeholder painted in
// the character's jacket color.
func playerImage(player *components.PlayerData, v *cfg.VariantConfig, w, h float64) *ebiten.Image {
	if img := assets.Default.Image(player.Visual, v.PlayerVisual); img != nil {
		return img
	}

	style, ok := cfg.Visuals[v.PlayerVisual]
	if !ok {
		style = cfg.VisualStyle{Shape: cfg.ShapeWriter, Primary: cfg.Teal, Secondary: cfg.White}
	}
	character := cfg.CharacterByID(player.CharacterID)
	style.Primary = character.Jacket
	style.Secondary = character.Cap

	key := fmt.Sprintf("%s/%s", character.ID, v.PlayerVisual)
	return styledImage(key, style, w, h)
}

// drawAura pulses a glow behind the player, fading over its window.
func drawAura(screen *ebiten.Image, effects *components.EffectsData, now time.Time, x, y, playerW float64) {
	glow := cfg.Pink
	if effects.AuraKind == components.AuraPoint {
		glow = cfg.BrightOrange
	}

	elapsed := now.Sub(effects.AuraStartedAt).Seconds()
	total := effects.AuraUntil.Sub(effects.AuraStartedAt).Seconds()
	fade := 1.0
	if total > 0 {
		fade = 1 - elapsed/total
	}

	radius := playerW * (0.9 + 0.15*math.Sin(elapsed*9))
	glow.A = uint8(110 * fade)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), glow, true)
}

// DrawEffectsOverlay flashes the hit tint over the whole play area,
// fading out across its window.
func DrawEffectsOverlay(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	effects := components.Effects.Get(playerEntry)
	now := GetOrCreateClock(e).Now
	if !effects.TintActive(now) {
		return
	}

	remaining := effects.TintUntil.Sub(now).Seconds()
	total := cfg.Effects.Tint.Seconds()
	alpha := float64(cfg.Effects.TintAlpha) * (remaining / total)

	vector.FillRect(screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		color.RGBA{R: 200, A: uint8(alpha)}, false)
}

// shakeOffset oscillates at two frequencies with decaying intensity,
// derived purely from how far into the shake window now is.
func shakeOffset(effects *components.EffectsData, now time.Time) (float64, float64) {
	if !effects.ShakeActive(now) {
		return 0, 0
	}

	elapsed := now.Sub(effects.ShakeStartedAt).Seconds()
	total := effects.ShakeUntil.Sub(effects.ShakeStartedAt).Seconds()
	progress := 0.0
	if total > 0 {
		progress = (total - elapsed) / total
	}
	intensity := cfg.Effects.ShakeIntensity * progress

	offsetX := math.Sin(elapsed*66) * intensity
	offsetY := math.Cos(elapsed*78) * intensity
	return offsetX, offsetY
}

// drawSprite draws img centered at (x, y) rotated by angle.
func drawSprite(screen *ebiten.Image, img *ebiten.Image, x, y, angle float64) {
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-w/2, -h/2)
	if angle != 0 {
		drawOp.GeoM.Rotate(angle)
	}
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// entityImage resolves a visual handle to its skin, falling back to a
// cached procedural placeholder at the requested size.
func entityImage(visual string, w, h float64) *ebiten.Image {
	if img := assets.Default.Image(visual); img != nil {
		return img
	}

	style, ok := cfg.Visuals[visual]
	if !ok {
		style = cfg.VisualStyle{Shape: cfg.ShapeRect, Primary: cfg.Magenta, Secondary: cfg.White}
	}
	return styledImage(visual, style, w, h)
}

// styledImage paints and caches a placeholder sprite for one style at
// one size.
func styledImage(key string, style cfg.VisualStyle, w, h float64) *ebiten.Image {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}

	cacheKey := fmt.Sprintf("%s/%dx%d", key, iw, ih)
	if img, ok := shapeCache[cacheKey]; ok {
		return img
	}

	img := ebiten.NewImage(iw, ih)
	paintPlaceholder(img, style, float64(iw), float64(ih))
	shapeCache[cacheKey] = img
	return img
}

// paintPlaceholder draws the flat-color stand-in for an unresolved
// visual. Each shape is a few rects and circles in the visual's palette,
// enough to read at gameplay size.
func paintPlaceholder(img *ebiten.Image, style cfg.VisualStyle, w, h float64) {
	fw, fh := float32(w), float32(h)
	switch style.Shape {
	case cfg.ShapeCircle:
		vector.DrawFilledCircle(img, fw/2, fh/2, fw/2, style.Primary, true)

	case cfg.ShapeCan:
		vector.DrawFilledRect(img, fw*0.15, fh*0.1, fw*0.7, fh*0.8, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.15, fh*0.1, fw*0.7, fh*0.12, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.15, fh*0.78, fw*0.7, fh*0.12, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.3, fh*0.35, fw*0.4, fh*0.3, style.Secondary, false)

	case cfg.ShapeHeart:
		vector.DrawFilledCircle(img, fw*0.3, fh*0.35, fw*0.22, style.Primary, true)
		vector.DrawFilledCircle(img, fw*0.7, fh*0.35, fw*0.22, style.Primary, true)
		vector.DrawFilledRect(img, fw*0.12, fh*0.38, fw*0.76, fh*0.25, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.28, fh*0.6, fw*0.44, fh*0.2, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.42, fh*0.78, fw*0.16, fh*0.14, style.Primary, false)

	case cfg.ShapeBottle:
		vector.DrawFilledRect(img, fw*0.35, 0, fw*0.3, fh*0.25, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.1, fh*0.25, fw*0.8, fh*0.75, style.Primary, false)

	case cfg.ShapePot:
		vector.DrawFilledRect(img, 0, 0, fw, fh*0.2, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.1, fh*0.2, fw*0.8, fh*0.5, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.2, fh*0.7, fw*0.6, fh*0.3, style.Primary, false)

	case cfg.ShapeChair:
		vector.DrawFilledRect(img, fw*0.15, fh*0.15, fw*0.7, fh*0.7, style.Primary, false)
		vector.DrawFilledCircle(img, fw*0.22, fh*0.22, fw*0.08, style.Secondary, true)
		vector.DrawFilledCircle(img, fw*0.78, fh*0.22, fw*0.08, style.Secondary, true)
		vector.DrawFilledCircle(img, fw*0.22, fh*0.78, fw*0.08, style.Secondary, true)
		vector.DrawFilledCircle(img, fw*0.78, fh*0.78, fw*0.08, style.Secondary, true)

	case cfg.ShapeCone:
		vector.DrawFilledRect(img, fw*0.35, 0, fw*0.3, fh*0.35, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.25, fh*0.35, fw*0.5, fh*0.15, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.2, fh*0.5, fw*0.6, fh*0.35, style.Primary, false)
		vector.DrawFilledRect(img, 0, fh*0.85, fw, fh*0.15, style.Primary, false)

	case cfg.ShapeCrate:
		vector.DrawFilledRect(img, 0, 0, fw, fh, style.Primary, false)
		vector.StrokeRect(img, 1, 1, fw-2, fh-2, 2, style.Secondary, false)
		vector.DrawFilledRect(img, 0, fh*0.45, fw, fh*0.1, style.Secondary, false)

	case cfg.ShapeWriter:
		// Side view: cap, head, jacket, legs.
		vector.DrawFilledCircle(img, fw/2, fh*0.16, fw*0.24, style.Secondary, true)
		vector.DrawFilledRect(img, fw*0.2, fh*0.02, fw*0.6, fh*0.08, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.15, fh*0.28, fw*0.7, fh*0.42, style.Primary, false)
		vector.DrawFilledRect(img, fw*0.22, fh*0.7, fw*0.2, fh*0.3, style.Secondary, false)
		vector.DrawFilledRect(img, fw*0.58, fh*0.7, fw*0.2, fh*0.3, style.Secondary, false)

	case cfg.ShapeWriterTop:
		// Top-down view: shoulders under a cap disc.
		vector.DrawFilledRect(img, fw*0.12, fh*0.25, fw*0.76, fh*0.5, style.Primary, false)
		vector.DrawFilledCircle(img, fw/2, fh/2, fw*0.3, style.Secondary, true)

	default:
		vector.DrawFilledRect(img, 0, 0, fw, fh, style.Primary, false)
		vector.DrawFilledRect(img, 0, fh*0.4, fw, fh*0.2, style.Secondary, false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(gamemath.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(gamemath.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(gamemath.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}
