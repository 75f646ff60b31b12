package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultsScene shows the end-of-session summary
type ResultsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	variant      cfg.VariantID
	session      *components.SessionData
	once         sync.Once
}

// NewResultsScene creates the summary scene for a finished session
func NewResultsScene(sc SceneChanger, variant cfg.VariantID, session *components.SessionData) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, variant: variant, session: session}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultsScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createRetryScene := func() interface{} {
		return NewMinigameScene(rs.sceneChanger, rs.variant)
	}
	createWorldmapScene := func() interface{} {
		return NewWorldmapScene(rs.sceneChanger)
	}
	createWelcomeScene := func() interface{} {
		return NewWelcomeScene(rs.sceneChanger)
	}

	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResults(rs.sceneChanger, createRetryScene, createWorldmapScene, createWelcomeScene))
	rs.ecs.AddSystem(systems.UpdateAudio)

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResults)

	systems.SetResults(rs.ecs, rs.session)
}
