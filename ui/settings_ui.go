package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/systems"
)

// SettingsUI is the pause panel. It edits the scene's settings component in place.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Callbacks
	OnResume func()
	OnClick  func()

	// Widget references for updates
	fullscreenButton *widget.Button
	debugButton      *widget.Button
	vfxButton        *widget.Button
	cameraButton     *widget.Button
	volumeButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSettingsUI creates the pause panel for the given settings.
func NewSettingsUI(settings *components.SettingsData, onResume, onClick func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: settings,
		OnResume: onResume,
		OnClick:  onClick,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (sui *SettingsUI) buildUI() {
	// Transparent root so the pause overlay stays visible behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(5),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(sui.newButton("Resume", &sui.normalFace, func() {
		if sui.OnResume != nil {
			sui.OnResume()
		}
	}))

	sui.fullscreenButton = sui.newButton(FullscreenLabel(sui.Settings), &sui.smallFace, func() {
		systems.ToggleFullscreen(sui.Settings)
	})
	panel.AddChild(sui.fullscreenButton)

	sui.debugButton = sui.newButton(DebugLabel(sui.Settings), &sui.smallFace, func() {
		systems.ToggleDebug(sui.Settings)
	})
	panel.AddChild(sui.debugButton)

	sui.vfxButton = sui.newButton(DashVFXLabel(sui.Settings), &sui.smallFace, func() {
		systems.ToggleDashVFX(sui.Settings)
	})
	panel.AddChild(sui.vfxButton)

	sui.cameraButton = sui.newButton(CameraStepLabel(sui.Settings), &sui.smallFace, func() {
		systems.CycleCameraStep(sui.Settings)
	})
	panel.AddChild(sui.cameraButton)

	sui.volumeButton = sui.newButton(VolumeLabel(sui.Settings), &sui.smallFace, func() {
		systems.CycleSFXVolume(sui.Settings)
	})
	panel.AddChild(sui.volumeButton)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// newButton builds a panel button that runs onClick and then refreshes the labels.
func (sui *SettingsUI) newButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(170, 20),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			if sui.OnClick != nil {
				sui.OnClick()
			}
			sui.UpdateUI()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes button labels from the settings component
func (sui *SettingsUI) UpdateUI() {
	setButtonLabel(sui.fullscreenButton, FullscreenLabel(sui.Settings))
	setButtonLabel(sui.debugButton, DebugLabel(sui.Settings))
	setButtonLabel(sui.vfxButton, DashVFXLabel(sui.Settings))
	setButtonLabel(sui.cameraButton, CameraStepLabel(sui.Settings))
	setButtonLabel(sui.volumeButton, VolumeLabel(sui.Settings))
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	// Labels can only change once widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

func FullscreenLabel(s *components.SettingsData) string {
	return "Fullscreen: " + onOff(s.Fullscreen)
}

func DebugLabel(s *components.SettingsData) string {
	return "Debug overlay: " + onOff(s.Debug)
}

func DashVFXLabel(s *components.SettingsData) string {
	return "Dash effects: " + onOff(s.DashVFX)
}

func CameraStepLabel(s *components.SettingsData) string {
	return fmt.Sprintf("Camera step: %.0f deg", s.CameraStep)
}

func VolumeLabel(s *components.SettingsData) string {
	return fmt.Sprintf("SFX volume: %.0f%%", s.SFXVolume*100)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
