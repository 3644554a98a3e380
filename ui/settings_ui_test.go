package ui

import (
	"testing"

	"github.com/automoto/dashcrawler/components"
)

func TestSettingsLabels(t *testing.T) {
	s := &components.SettingsData{Fullscreen: true, CameraStep: 45, SFXVolume: 0.75}

	tests := []struct {
		got, want string
	}{
		{FullscreenLabel(s), "Fullscreen: On"},
		{DebugLabel(s), "Debug overlay: Off"},
		{DashVFXLabel(s), "Dash effects: Off"},
		{CameraStepLabel(s), "Camera step: 45 deg"},
		{VolumeLabel(s), "SFX volume: 75%"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("label = %q, want %q", tt.got, tt.want)
		}
	}
}
