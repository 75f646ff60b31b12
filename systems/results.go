package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateResults creates the results screen system with scene
// transition capability.
func NewUpdateResults(sceneChanger SceneChanger, createRetryScene, createWorldmapScene, createWelcomeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		results := GetOrCreateResults(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.ResultsMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			results.SelectedOption = components.ResultsOption(
				(int(results.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			results.SelectedOption = components.ResultsOption(
				(int(results.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch results.SelectedOption {
			case components.ResultsRetry:
				sceneChanger.ChangeScene(createRetryScene())
			case components.ResultsMap:
				sceneChanger.ChangeScene(createWorldmapScene())
			case components.ResultsMenu:
				sceneChanger.ChangeScene(createWelcomeScene())
			}
		}
	}
}

// DrawResults renders the outcome screen
func DrawResults(e *ecs.ECS, screen *ebiten.Image) {
	results := GetOrCreateResults(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	background := cfg.Results.LossBackground
	title := cfg.Results.LossTitle
	titleColor := cfg.Results.LossTitleColor
	if results.Won {
		background = cfg.Results.WinBackground
		title = cfg.Results.WinTitle
		titleColor = cfg.Results.TitleColor
	}

	vector.FillRect(screen, 0, 0, float32(width), float32(height), background, false)

	titleFont := fonts.Title.Get()
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Results.TitleY), titleColor)

	// Run stats
	statsFont := fonts.Body.Get()
	stats := fmt.Sprintf("%s   SCORE %d   HEARTS %d", results.Variant, results.FinalScore, results.HeartsLeft)
	statsWidth := len(stats) * 7
	statsX := int((width - float64(statsWidth)) / 2)
	text.Draw(screen, stats, statsFont, statsX, int(cfg.Results.StatsY), cfg.Results.TextColor)

	// Draw menu options
	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Results.MenuOptions {
		y := cfg.Results.MenuStartY + float64(i)*(cfg.Results.MenuItemHeight+cfg.Results.MenuItemGap)

		textColor := cfg.Results.TextColor
		if components.ResultsOption(i) == results.SelectedOption {
			textColor = cfg.Results.SelectedColor
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.Results.MenuItemHeight), textColor)
	}
}

// SetResults seeds the results singleton from a finished session
func SetResults(e *ecs.ECS, session *components.SessionData) {
	results := GetOrCreateResults(e)
	results.SelectedOption = components.ResultsRetry
	results.Won = session.Outcome == components.OutcomeWon
	results.FinalScore = session.Score
	results.HeartsLeft = session.Hearts
	results.Variant = session.Variant.Title
}

// GetOrCreateResults returns the singleton Results component, creating if needed
func GetOrCreateResults(e *ecs.ECS) *components.ResultsData {
	if _, ok := components.Results.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Results))
		components.Results.SetValue(ent, components.ResultsData{
			SelectedOption: components.ResultsRetry,
		})
	}

	ent, _ := components.Results.First(e.World)
	return components.Results.Get(ent)
}
