package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwhale/spraydash/assets"
	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems"
	"github.com/voidwhale/spraydash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MinigameScene runs one station session
type MinigameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	variant      cfg.VariantID
	once         sync.Once
}

// NewMinigameScene creates the gameplay scene for one station
func NewMinigameScene(sc SceneChanger, variant cfg.VariantID) *MinigameScene {
	return &MinigameScene{sceneChanger: sc, variant: variant}
}

func (ms *MinigameScene) Update() {
	ms.once.Do(ms.configure)

	// The clock advances before any system runs, so every system in this
	// tick sees the same now and the same delta.
	systems.AdvanceClock(ms.ecs, time.Now())
	ms.ecs.Update()
}

func (ms *MinigameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MinigameScene) configure() {
	// Preload SFX to avoid lag on the first hit (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())
	ms.ecs = e

	createWorldmapScene := func() interface{} {
		return NewWorldmapScene(ms.sceneChanger)
	}

	onWin := func(session *components.SessionData) {
		systems.MarkCleared(ms.variant)
		ms.sceneChanger.ChangeScene(NewResultsScene(ms.sceneChanger, ms.variant, session))
	}
	onLose := func(session *components.SessionData) {
		ms.sceneChanger.ChangeScene(NewResultsScene(ms.sceneChanger, ms.variant, session))
	}

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(ms.sceneChanger, createWorldmapScene))
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerIntent))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Session resolver runs always (handles the end-of-run callback)
	e.AddSystem(systems.NewUpdateSession(onWin, onLose))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawEffectsOverlay)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	now := time.Now()
	characterID := systems.SelectedCharacter()
	sessionEntry := factory.CreateSession(e, cfg.Variants[ms.variant], characterID, now.UnixNano(), now)
	session := components.Session.Get(sessionEntry)
	v := session.Variant

	// Resolve sprite aspects once, on the session's private variant copy.
	// Unresolved visuals keep their configured fallback.
	for i := range v.EnemyKinds {
		kind := &v.EnemyKinds[i]
		kind.Aspect = assets.Default.Aspect(kind.Aspect, kind.Visual)
	}
	character := cfg.CharacterByID(characterID)
	aspect := assets.Default.Aspect(v.PlayerAspect, character.Visual, v.PlayerVisual)

	startX, startY := playerStart(v)
	factory.CreatePlayer(e, v, characterID, aspect, startX, startY)
}

// playerStart picks the spawn point the variant geometry expects:
// grounded variants start on the floor line, the arena variant starts
// at the center.
func playerStart(v *cfg.VariantConfig) (float64, float64) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	switch v.Geometry {
	case cfg.SpawnEdges:
		return w / 2, h / 2
	case cfg.SpawnGroundScroll:
		return w * 0.3, v.FloorY - v.PlayerHeight()/2
	default:
		return w / 2, v.FloorY - v.PlayerHeight()/2
	}
}
