package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the session panel: hearts on the left, the countdown
// in the center and the score on the right, with the station name below.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	clock := GetOrCreateClock(ecs)

	width := float64(screen.Bounds().Dx())

	// Panel strip across the top
	vector.DrawFilledRect(screen,
		0, 0,
		float32(width), float32(cfg.HUD.PanelHeight),
		cfg.HUD.PanelColor, false)

	drawHearts(screen, session)
	drawTimer(screen, session, clock, width)
	drawScore(screen, session, width)

	// Station name in small type under the panel
	titleFont := fonts.Small.Get()
	title := session.Variant.Title
	titleWidth := len(title) * 7
	text.Draw(screen, title, titleFont,
		int((width-float64(titleWidth))/2), int(cfg.HUD.PanelHeight)+12,
		cfg.HUD.TimerColor)
}

func drawHearts(screen *ebiten.Image, session *components.SessionData) {
	y := (cfg.HUD.PanelHeight - cfg.HUD.HeartSize) / 2
	for i := 0; i < session.MaxHearts; i++ {
		clr := cfg.HUD.HeartEmpty
		if i < session.Hearts {
			clr = cfg.HUD.HeartFull
		}
		x := cfg.HUD.Margin + float64(i)*(cfg.HUD.HeartSize+cfg.HUD.HeartGap)
		drawHeart(screen, x, y, cfg.HUD.HeartSize, clr)
	}
}

func drawTimer(screen *ebiten.Image, session *components.SessionData, clock *components.ClockData, width float64) {
	remaining := session.RemainingSeconds(clock.Now)
	label := fmt.Sprintf("%d", remaining)

	clr := cfg.HUD.TimerColor
	if remaining <= 5 {
		clr = cfg.LightRed
	}

	timerFont := fonts.Bold.Get()
	labelWidth := len(label) * 12
	text.Draw(screen, label, timerFont,
		int((width-float64(labelWidth))/2), int(cfg.HUD.PanelHeight)-6, clr)
}

func drawScore(screen *ebiten.Image, session *components.SessionData, width float64) {
	label := fmt.Sprintf("SCORE %d", session.Score)
	if session.Variant.Win == cfg.WinOnScore {
		label = fmt.Sprintf("SCORE %d/%d", session.Score, session.Variant.TargetScore)
	}

	scoreFont := fonts.Body.Get()
	labelWidth := len(label) * 7
	text.Draw(screen, label, scoreFont,
		int(width-float64(labelWidth))-int(cfg.HUD.Margin), int(cfg.HUD.PanelHeight)-8,
		cfg.HUD.ScoreColor)
}

// drawHeart paints a blocky heart from two lobes and a stepped point.
func drawHeart(screen *ebiten.Image, x, y, size float64, clr color.RGBA) {
	r := size / 4
	vector.DrawFilledCircle(screen, float32(x+r), float32(y+r), float32(r), clr, true)
	vector.DrawFilledCircle(screen, float32(x+3*r), float32(y+r), float32(r), clr, true)

	rows := 4
	for i := 0; i < rows; i++ {
		rowW := size * float64(rows-i) / float64(rows)
		rowX := x + (size-rowW)/2
		rowY := y + r + float64(i)*r*0.75
		vector.DrawFilledRect(screen, float32(rowX), float32(rowY), float32(rowW), float32(r*0.8), clr, false)
	}
}
