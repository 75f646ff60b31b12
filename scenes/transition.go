package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TransitionScene shows the briefing card before a station starts
type TransitionScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	variant      cfg.VariantID
	once         sync.Once
}

// NewTransitionScene creates the briefing scene for one station
func NewTransitionScene(sc SceneChanger, variant cfg.VariantID) *TransitionScene {
	return &TransitionScene{sceneChanger: sc, variant: variant}
}

func (ts *TransitionScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TransitionScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TransitionScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createMinigameScene := func() interface{} {
		return NewMinigameScene(ts.sceneChanger, ts.variant)
	}
	createWorldmapScene := func() interface{} {
		return NewWorldmapScene(ts.sceneChanger)
	}

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateTransition(ts.sceneChanger, ts.variant, createMinigameScene, createWorldmapScene))
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTransition)
}
