package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
)

// pendingSettings is applied to the first settings component created, so
// values loaded at startup reach the scene.
var pendingSettings *SavedSettings

// UseSavedSettings queues settings loaded before any scene exists.
func UseSavedSettings(saved *SavedSettings) {
	pendingSettings = saved
	if saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
	}
}

// DefaultSettings returns settings built from the config defaults.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		Debug:      cfg.Debug.Overlay,
		DashVFX:    true,
		CameraStep: cfg.Camera.RotateStep,
		SFXVolume:  cfg.Audio.DefaultSFXVol,
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		s := DefaultSettings()
		ApplySavedSettings(&s, pendingSettings)
		components.Settings.SetValue(entry, s)
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug toggle and writes changed settings.
// Runs while paused so panel changes are saved immediately.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		ToggleDebug(settings)
	}

	SetSFXVolume(settings.SFXVolume)

	if settings.Dirty {
		SaveCurrentSettings(settings)
	}
}

func ToggleDebug(s *components.SettingsData) {
	s.Debug = !s.Debug
	s.Dirty = true
}

func ToggleDashVFX(s *components.SettingsData) {
	s.DashVFX = !s.DashVFX
	s.Dirty = true
}

func ToggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	s.Dirty = true
	ebiten.SetFullscreen(s.Fullscreen)
}

// CycleSFXVolume steps to the next volume level, wrapping to silent.
func CycleSFXVolume(s *components.SettingsData) {
	s.SFXVolume = nextInCycle(cfg.SettingsMenu.VolumeSteps, s.SFXVolume)
	s.Dirty = true
}

// CycleCameraStep steps through the camera rotate increments.
func CycleCameraStep(s *components.SettingsData) {
	s.CameraStep = nextInCycle(cfg.Pause.CameraSteps, s.CameraStep)
	s.Dirty = true
	zap.L().Debug("camera step changed", zap.Float64("degrees", s.CameraStep))
}

// nextInCycle returns the value after current in steps, or the first step
// when current is not one of them.
func nextInCycle(steps []float64, current float64) float64 {
	if len(steps) == 0 {
		return current
	}
	for i, v := range steps {
		if v == current {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[0]
}
