package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTransition creates the briefing card system. The card fades
// in, holds while the station's instructions are read, and fades back
// out once the player confirms; the minigame starts when the outro
// completes. Confirm works during the intro too, so the card never
// gates a player in a hurry.
func NewUpdateTransition(sceneChanger SceneChanger, variant cfg.VariantID, createMinigameScene func() interface{}, createWorldmapScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		tr := getOrCreateTransition(e, variant)
		input := getOrCreateInput(e)

		tr.Elapsed += worldmapTickDelta

		if tr.Outro != nil {
			a, done := tr.Outro.Update(worldmapTickDelta)
			tr.Alpha = float64(a)
			if done {
				sceneChanger.ChangeScene(createMinigameScene())
			}
			return
		}

		if tr.Intro != nil {
			a, _, done := tr.Intro.Update(worldmapTickDelta)
			tr.Alpha = float64(a)
			if done {
				tr.Intro = nil
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionJump).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			tr.Intro = nil
			tr.Outro = gween.New(float32(tr.Alpha), 0, cfg.Transition.FadeTime, ease.InQuad)
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createWorldmapScene())
		}
	}
}

// DrawTransition renders the briefing card for the station about to be
// played.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(entry)
	theme := cfg.Themes[tr.Variant]
	variant := cfg.Variants[tr.Variant]

	width := float64(screen.Bounds().Dx())

	screen.Fill(cfg.Transition.Background)

	titleFont := fonts.Title.Get()
	title := variant.Title
	titleWidth := len(title) * 19
	text.Draw(screen, title, titleFont,
		int((width-float64(titleWidth))/2), int(cfg.Transition.TitleY),
		theme.Accent)

	bodyFont := fonts.Body.Get()
	for i, line := range theme.Instructions {
		lineWidth := len(line) * 6
		y := cfg.Transition.TextStartY + float64(i)*cfg.Transition.LineHeight
		text.Draw(screen, line, bodyFont,
			int((width-float64(lineWidth))/2), int(y),
			cfg.Transition.TextColor)
	}

	// Blink the hint once the card has settled
	if tr.Intro == nil && tr.Outro == nil && math.Mod(tr.Elapsed, 1.0) < 0.65 {
		hint := cfg.Transition.ContinueKey
		hintFont := fonts.Small.Get()
		hintWidth := len(hint) * 7
		text.Draw(screen, hint, hintFont,
			int((width-float64(hintWidth))/2), int(cfg.Transition.HintY),
			cfg.Transition.HintColor)
	}

	// Fade the whole card in from black
	if tr.Alpha < 1 {
		height := float64(screen.Bounds().Dy())
		shade := uint8(255 * (1 - tr.Alpha))
		vector.FillRect(screen, 0, 0, float32(width), float32(height),
			color.RGBA{A: shade}, false)
	}
}

func getOrCreateTransition(e *ecs.ECS, variant cfg.VariantID) *components.TransitionData {
	if _, ok := components.Transition.First(e.World); !ok {
		intro := gween.NewSequence(
			gween.New(0, 1, cfg.Transition.FadeTime, ease.OutQuad),
			gween.New(1, 1, cfg.Transition.HoldTime, ease.Linear),
		)
		ent := e.World.Entry(e.World.Create(components.Transition))
		components.Transition.SetValue(ent, components.TransitionData{
			Variant: variant,
			Intro:   intro,
		})
	}

	ent, _ := components.Transition.First(e.World)
	return components.Transition.Get(ent)
}
