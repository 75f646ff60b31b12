package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// WelcomeUI holds the ebitenui interface for the welcome screen
type WelcomeUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()

	// Widget references for updates
	charButtons  []*widget.Button
	soundButton  *widget.Button
	hitboxButton *widget.Button
	windowButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewWelcomeUI creates the welcome screen UI with ebitenui
func NewWelcomeUI(onPlay func()) *WelcomeUI {
	wui := &WelcomeUI{
		OnPlay: onPlay,
	}

	wui.loadFonts()
	wui.buildUI()

	return wui
}

func (wui *WelcomeUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	// Sized to fit the 640x360 screen
	wui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	wui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	wui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (wui *WelcomeUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 14, 34, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SPRAYDASH", &wui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 180, 50, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("three spots, one night, keep your hearts", &wui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	// Play button
	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(wui.playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &wui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if wui.OnPlay != nil {
				wui.OnPlay()
			}
		}),
	)
	contentContainer.AddChild(playButton)

	// Character row
	contentContainer.AddChild(wui.buildCharacterRow())

	// Option toggles
	contentContainer.AddChild(wui.buildOptionsContainer())

	// Exit button
	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.ButtonOpts.Image(wui.buttonImage()),
		widget.ButtonOpts.Text("EXIT", &wui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			os.Exit(0)
		}),
	)
	contentContainer.AddChild(exitButton)

	rootContainer.AddChild(contentContainer)

	wui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (wui *WelcomeUI) buildCharacterRow() *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{34, 28, 54, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	rowLabel := widget.NewLabel(
		widget.LabelOpts.Text("WRITER:", &wui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(rowLabel)

	for _, character := range cfg.Characters {
		id := character.ID // Capture for closure
		charButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
			widget.ButtonOpts.Image(wui.buttonImage()),
			widget.ButtonOpts.Text(wui.characterLabel(character), &wui.smallFace, &widget.ButtonTextColor{
				Idle:    character.Jacket,
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				systems.SetSelectedCharacter(id)
				_ = systems.SaveSettings(systems.CurrentSettings())
				wui.UpdateUI()
			}),
		)
		wui.charButtons = append(wui.charButtons, charButton)
		row.AddChild(charButton)
	}

	return row
}

func (wui *WelcomeUI) buildOptionsContainer() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{26, 22, 44, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	wui.soundButton = wui.optionButton(wui.soundLabel(), func() {
		systems.SetMuted(!systems.IsMuted())
	})
	container.AddChild(wui.soundButton)

	wui.hitboxButton = wui.optionButton(wui.hitboxLabel(), func() {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	})
	container.AddChild(wui.hitboxButton)

	wui.windowButton = wui.optionButton(wui.windowLabel(), func() {
		systems.CycleResolution()
	})
	container.AddChild(wui.windowButton)

	return container
}

func (wui *WelcomeUI) optionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 20)),
		widget.ButtonOpts.Image(wui.buttonImage()),
		widget.ButtonOpts.Text(label, &wui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			_ = systems.SaveSettings(systems.CurrentSettings())
			wui.UpdateUI()
		}),
	)
}

func (wui *WelcomeUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 50, 90, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 70, 110, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 35, 70, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (wui *WelcomeUI) playButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (wui *WelcomeUI) characterLabel(character cfg.CharacterConfig) string {
	if character.ID == systems.SelectedCharacter() {
		return fmt.Sprintf("[%s]", character.Name)
	}
	return character.Name
}

func (wui *WelcomeUI) soundLabel() string {
	if systems.IsMuted() {
		return "SOUND: OFF"
	}
	return "SOUND: ON"
}

func (wui *WelcomeUI) hitboxLabel() string {
	if cfg.Debug.ShowHitboxes {
		return "HITBOXES: ON"
	}
	return "HITBOXES: OFF"
}

func (wui *WelcomeUI) windowLabel() string {
	return "WINDOW: " + systems.ResolutionLabel()
}

// UpdateUI refreshes the option labels to the live state
func (wui *WelcomeUI) UpdateUI() {
	for i, character := range cfg.Characters {
		if i >= len(wui.charButtons) || wui.charButtons[i] == nil {
			continue
		}
		if textWidget := wui.charButtons[i].Text(); textWidget != nil {
			textWidget.Label = wui.characterLabel(character)
		}
	}

	if wui.soundButton != nil {
		if textWidget := wui.soundButton.Text(); textWidget != nil {
			textWidget.Label = wui.soundLabel()
		}
	}
	if wui.hitboxButton != nil {
		if textWidget := wui.hitboxButton.Text(); textWidget != nil {
			textWidget.Label = wui.hitboxLabel()
		}
	}
	if wui.windowButton != nil {
		if textWidget := wui.windowButton.Text(); textWidget != nil {
			textWidget.Label = wui.windowLabel()
		}
	}
}

// Update calls the UI's Update method
func (wui *WelcomeUI) Update() {
	wui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !wui.initialized {
		wui.initialized = true
		wui.UpdateUI()
	}
}
