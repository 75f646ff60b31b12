package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwhale/spraydash/systems"
	"github.com/voidwhale/spraydash/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WelcomeScene shows the title, writer picker and options using ebitenui
type WelcomeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	welcomeUI    *ui.WelcomeUI
	once         sync.Once
	shouldPlay   bool
}

// NewWelcomeScene creates a new welcome scene
func NewWelcomeScene(sc SceneChanger) *WelcomeScene {
	return &WelcomeScene{sceneChanger: sc}
}

func (ws *WelcomeScene) Update() {
	ws.once.Do(ws.configure)

	// Update ECS for audio
	ws.ecs.Update()

	// Update ebitenui
	ws.welcomeUI.Update()

	if ws.shouldPlay {
		ws.sceneChanger.ChangeScene(NewWorldmapScene(ws.sceneChanger))
	}
}

func (ws *WelcomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 14, 34, 255})

	if ws.ecs == nil {
		return
	}

	// Draw ebitenui
	ws.welcomeUI.UI.Draw(screen)
}

func (ws *WelcomeScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system
	ws.ecs.AddSystem(systems.UpdateAudio)

	ws.welcomeUI = ui.NewWelcomeUI(func() {
		// A new night starts with a blank district.
		systems.ResetProgress()
		ws.shouldPlay = true
	})
}
