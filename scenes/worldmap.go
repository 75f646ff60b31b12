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

// WorldmapScene shows the district map the player picks stations from
type WorldmapScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldmapScene creates a new district map scene
func NewWorldmapScene(sc SceneChanger) *WorldmapScene {
	return &WorldmapScene{sceneChanger: sc}
}

func (ws *WorldmapScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldmapScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldmapScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	createTransitionScene := func(variant cfg.VariantID) interface{} {
		return NewTransitionScene(ws.sceneChanger, variant)
	}
	createWelcomeScene := func() interface{} {
		return NewWelcomeScene(ws.sceneChanger)
	}

	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.NewUpdateWorldmap(ws.sceneChanger, createTransitionScene, createWelcomeScene))
	ws.ecs.AddSystem(systems.UpdateAudio)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawWorldmap)
}
