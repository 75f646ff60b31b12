package config

import (
	"image/color"
	"time"
)

// SessionConfig contains session lifecycle configuration shared by all variants
type SessionConfig struct {
	StartHearts     int
	MaxHearts       int
	CollectibleHeal int

	// Delay between a terminal outcome and the end-of-game callback
	ResolveDelay time.Duration

	// Largest simulation step a single frame may advance the clock
	MaxTickDelta time.Duration
}

// EffectsConfig contains status effect timing and presentation values
type EffectsConfig struct {
	Invulnerability time.Duration
	Flicker         time.Duration
	Shake           time.Duration
	Tint            time.Duration
	Aura            time.Duration

	FlickerSlice   time.Duration // hidden/visible alternation period
	ShakeIntensity float64       // pixels
	TintAlpha      uint8         // alpha of the full-screen hit overlay
}

// HUDConfig contains in-game HUD layout values
type HUDConfig struct {
	Margin      float64
	HeartSize   float64
	HeartGap    float64
	TimerColor  color.RGBA
	ScoreColor  color.RGBA
	HeartFull   color.RGBA
	HeartEmpty  color.RGBA
	PanelColor  color.RGBA
	PanelHeight float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ResultsConfig contains victory/defeat screen configuration values
type ResultsConfig struct {
	WinBackground  color.RGBA
	LossBackground color.RGBA
	WinTitle       string
	LossTitle      string
	TitleColor     color.RGBA
	LossTitleColor color.RGBA
	TextColor      color.RGBA
	SelectedColor  color.RGBA
	TitleY         float64
	StatsY         float64
	MenuStartY     float64
	MenuItemHeight float64
	MenuItemGap    float64
	MenuOptions    []string
}

// TransitionConfig contains the pre-minigame briefing screen values
type TransitionConfig struct {
	Background  color.RGBA
	TextColor   color.RGBA
	HintColor   color.RGBA
	TitleY      float64
	TextStartY  float64
	LineHeight  float64
	HintY       float64
	FadeTime    float32 // seconds per fade leg of the tween sequence
	HoldTime    float32 // seconds the briefing stays fully visible
	ContinueKey string
}

// WorldmapConfig contains the district map screen configuration values
type WorldmapConfig struct {
	MapFile       string
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	StreetColor   color.RGBA
	StationColor  color.RGBA
	ClearedColor  color.RGBA
	CursorColor   color.RGBA
	LabelColor    color.RGBA
	CursorGlide   float32 // seconds for the cursor tween between stations
	StationRadius float64
	HintText      string
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowHitboxes bool // draw derived collision shapes and spawner state
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Session SessionConfig
var Effects EffectsConfig
var HUD HUDConfig
var Pause PauseConfig
var Results ResultsConfig
var Transition TransitionConfig
var Worldmap WorldmapConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Teal         = color.RGBA{R: 0, G: 200, B: 180, A: 255}
	Pink         = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "SPRAYDASH",
	}

	// Session Config
	Session = SessionConfig{
		StartHearts:     3,
		MaxHearts:       5,
		CollectibleHeal: 1,
		ResolveDelay:    400 * time.Millisecond,
		MaxTickDelta:    100 * time.Millisecond,
	}

	// Effects Config
	Effects = EffectsConfig{
		Invulnerability: 1500 * time.Millisecond,
		Flicker:         500 * time.Millisecond,
		Shake:           300 * time.Millisecond,
		Tint:            300 * time.Millisecond,
		Aura:            500 * time.Millisecond,
		FlickerSlice:    60 * time.Millisecond,
		ShakeIntensity:  4.0,
		TintAlpha:       70,
	}

	// HUD Config
	HUD = HUDConfig{
		Margin:      8,
		HeartSize:   14,
		HeartGap:    4,
		TimerColor:  White,
		ScoreColor:  BrightOrange,
		HeartFull:   LightRed,
		HeartEmpty:  color.RGBA{R: 70, G: 70, B: 80, A: 255},
		PanelColor:  color.RGBA{R: 0, G: 0, B: 0, A: 120},
		PanelHeight: 30,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Quit to Map"},
	}

	// Results Config
	Results = ResultsConfig{
		WinBackground:  color.RGBA{R: 15, G: 40, B: 25, A: 255},
		LossBackground: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		WinTitle:       "PIECE COMPLETE!",
		LossTitle:      "BUSTED!",
		TitleColor:     BrightGreen,
		LossTitleColor: LightRed,
		TextColor:      White,
		SelectedColor:  BrightOrange,
		TitleY:         80,
		StatsY:         140,
		MenuStartY:     210,
		MenuItemHeight: 30,
		MenuItemGap:    15,
		MenuOptions:    []string{"Retry", "District Map", "Main Menu"},
	}

	// Transition Config
	Transition = TransitionConfig{
		Background:  color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TextColor:   White,
		HintColor:   LightBlue,
		TitleY:      70,
		TextStartY:  140,
		LineHeight:  24,
		HintY:       300,
		FadeTime:    0.4,
		HoldTime:    1.2,
		ContinueKey: "Press ENTER to start",
	}

	// Worldmap Config
	Worldmap = WorldmapConfig{
		MapFile:       "maps/district.tmx",
		SkyTop:        color.RGBA{R: 24, G: 20, B: 48, A: 255},
		SkyBottom:     color.RGBA{R: 66, G: 40, B: 90, A: 255},
		StreetColor:   color.RGBA{R: 50, G: 50, B: 60, A: 255},
		StationColor:  DarkBlue,
		ClearedColor:  BrightGreen,
		CursorColor:   BrightOrange,
		LabelColor:    White,
		CursorGlide:   0.25,
		StationRadius: 14,
		HintText:      "Arrows to pick a spot, ENTER to paint",
	}

	// Debug Config (defaults, can be overridden by CLI flags or settings)
	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
