package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/voidwhale/spraydash/assets"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// The worldmap has no session clock, so tweens advance by the nominal
// frame time.
const worldmapTickDelta = 1.0 / 60

// lastStationIndex survives scene teardown so the cursor returns to the
// station the player just left.
var lastStationIndex int

// NewUpdateWorldmap creates the district map system. Left/right glides
// the cursor between stations, select opens the station's briefing,
// back returns to the welcome screen.
func NewUpdateWorldmap(sceneChanger SceneChanger, createTransitionScene func(cfg.VariantID) interface{}, createWelcomeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		wm := GetOrCreateWorldmap(e)
		input := getOrCreateInput(e)

		if len(wm.Stations) == 0 {
			return
		}

		prev := wm.Selected
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			wm.Selected = (wm.Selected - 1 + len(wm.Stations)) % len(wm.Stations)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			wm.Selected = (wm.Selected + 1) % len(wm.Stations)
		}
		if wm.Selected != prev {
			PlaySFX(e, cfg.SoundMenuNavigate)
			lastStationIndex = wm.Selected
			target := wm.Stations[wm.Selected]
			wm.TweenX = gween.New(float32(wm.CursorX), float32(target.X), cfg.Worldmap.CursorGlide, ease.OutQuad)
			wm.TweenY = gween.New(float32(wm.CursorY), float32(target.Y), cfg.Worldmap.CursorGlide, ease.OutQuad)
		}

		if wm.TweenX != nil {
			x, done := wm.TweenX.Update(worldmapTickDelta)
			wm.CursorX = float64(x)
			if done {
				wm.TweenX = nil
			}
		}
		if wm.TweenY != nil {
			y, done := wm.TweenY.Update(worldmapTickDelta)
			wm.CursorY = float64(y)
			if done {
				wm.TweenY = nil
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createTransitionScene(wm.Stations[wm.Selected].Variant))
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createWelcomeScene())
		}
	}
}

// DrawWorldmap renders the district: evening sky, walk paths, station
// markers and the glide cursor.
func DrawWorldmap(ecs *ecs.ECS, screen *ebiten.Image) {
	wm := GetOrCreateWorldmap(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawSky(screen, width, height)

	// Street band along the bottom of the district
	vector.DrawFilledRect(screen,
		0, float32(height*0.82),
		float32(width), float32(height*0.18),
		cfg.Worldmap.StreetColor, false)

	for _, path := range wm.WalkPaths {
		for i := 1; i < len(path); i++ {
			vector.StrokeLine(screen,
				float32(path[i-1].X), float32(path[i-1].Y),
				float32(path[i].X), float32(path[i].Y),
				3, cfg.Worldmap.StreetColor, true)
		}
	}

	labelFont := fonts.Small.Get()
	for _, st := range wm.Stations {
		clr := cfg.Worldmap.StationColor
		if IsCleared(st.Variant) {
			clr = cfg.Worldmap.ClearedColor
		}
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y),
			float32(cfg.Worldmap.StationRadius), clr, true)

		labelWidth := len(st.Name) * 7
		text.Draw(screen, st.Name, labelFont,
			int(st.X)-labelWidth/2, int(st.Y+cfg.Worldmap.StationRadius)+16,
			cfg.Worldmap.LabelColor)
	}

	// Cursor ring around (or gliding toward) the selected station
	vector.StrokeCircle(screen, float32(wm.CursorX), float32(wm.CursorY),
		float32(cfg.Worldmap.StationRadius+5), 2, cfg.Worldmap.CursorColor, true)

	if len(wm.Stations) > 0 {
		title := wm.Stations[wm.Selected].Name
		titleFont := fonts.Bold.Get()
		titleWidth := len(title) * 12
		text.Draw(screen, title, titleFont,
			int((width-float64(titleWidth))/2), 34, cfg.Worldmap.CursorColor)
	}

	progress := fmt.Sprintf("%d/%d painted", ClearedCount(), len(wm.Stations))
	text.Draw(screen, progress, labelFont,
		int(width)-len(progress)*7-10, 20, cfg.Worldmap.LabelColor)

	hint := cfg.Worldmap.HintText
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, labelFont,
		int((width-float64(hintWidth))/2), int(height)-12, cfg.Worldmap.LabelColor)
}

func drawSky(screen *ebiten.Image, width, height float64) {
	const strips = 12
	stripH := height / strips
	for i := 0; i < strips; i++ {
		t := float64(i) / (strips - 1)
		vector.DrawFilledRect(screen,
			0, float32(float64(i)*stripH),
			float32(width), float32(stripH+1),
			lerpColor(cfg.Worldmap.SkyTop, cfg.Worldmap.SkyBottom, t), false)
	}
}

// GetOrCreateWorldmap returns the singleton worldmap state, loading the
// district layout on first use.
func GetOrCreateWorldmap(ecs *ecs.ECS) *components.WorldmapData {
	if _, ok := components.Worldmap.First(ecs.World); !ok {
		district := assets.LoadDistrictMap(cfg.Worldmap.MapFile)

		selected := lastStationIndex
		if selected < 0 || selected >= len(district.Stations) {
			selected = 0
		}

		wm := components.WorldmapData{
			Stations:  district.Stations,
			WalkPaths: district.WalkPaths,
			Selected:  selected,
		}
		if len(district.Stations) > 0 {
			wm.CursorX = district.Stations[selected].X
			wm.CursorY = district.Stations[selected].Y
		}

		ent := ecs.World.Entry(ecs.World.Create(components.Worldmap))
		components.Worldmap.SetValue(ent, wm)
	}

	ent, _ := components.Worldmap.First(ecs.World)
	return components.Worldmap.Get(ent)
}
