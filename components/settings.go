package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the persisted player settings
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	DashVFX    bool
	CameraStep float64 // degrees per camera rotate press
	SFXVolume  float64 // 0.0, 0.25, 0.50, 0.75, 1.0

	// Dirty is set when a value changed and still needs saving
	Dirty bool
}

// Settings is the component type for settings state
var Settings = donburi.NewComponentType[SettingsData]()
