package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	cfg "github.com/voidwhale/spraydash/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted           bool    `json:"muted"`
	SFXVolume       float64 `json:"sfxVolume"`
	ShowHitboxes    bool    `json:"showHitboxes"`
	Character       string  `json:"character"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spraydash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live option state for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Muted:           IsMuted(),
		SFXVolume:       SFXVolume(),
		ShowHitboxes:    cfg.Debug.ShowHitboxes,
		Character:       SelectedCharacter(),
		ResolutionIndex: selectedResolutionIndex,
	}
}

// ApplySavedSettingsGlobal applies settings during startup, before any
// scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMuted(saved.Muted)
	if saved.SFXVolume > 0 {
		SetSFXVolume(saved.SFXVolume)
	}
	cfg.Debug.ShowHitboxes = saved.ShowHitboxes

	if saved.Character != "" {
		SetSelectedCharacter(saved.Character)
	}

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		selectedResolutionIndex = saved.ResolutionIndex
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// selectedResolutionIndex tracks the active window size option.
var selectedResolutionIndex = cfg.Settings.DefaultResolutionIndex

// selectedCharacter is the handle the next session is created with.
var selectedCharacter = cfg.Settings.DefaultCharacter

// SelectedCharacter returns the active character handle.
func SelectedCharacter() string {
	return selectedCharacter
}

// SetSelectedCharacter switches the active character. Unknown handles
// fall back to the default roster entry.
func SetSelectedCharacter(id string) {
	if cfg.CharacterByID(id).ID != id {
		id = cfg.Settings.DefaultCharacter
	}
	selectedCharacter = id
}

// CycleResolution steps to the next window size option and applies it.
func CycleResolution() {
	selectedResolutionIndex = (selectedResolutionIndex + 1) % len(cfg.Settings.Resolutions)
	res := cfg.Settings.Resolutions[selectedResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// ResolutionLabel returns the label of the active window size option.
func ResolutionLabel() string {
	return cfg.Settings.Resolutions[selectedResolutionIndex].Label
}
