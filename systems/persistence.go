package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool    `json:"debug"`
	Fullscreen bool    `json:"fullscreen"`
	DashVFX    bool    `json:"dashVfx"`
	CameraStep float64 `json:"cameraStep"`
	SFXVolume  float64 `json:"sfxVolume"`
}

// SavedProgress remembers the last arena played.
type SavedProgress struct {
	Arena string `json:"arena"`
}

// ItemStore is the slice of gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var _ ItemStore = (*gdata.Manager)(nil)

var store ItemStore

// InitPersistence opens the gdata store for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	store = m
	return nil
}

// SetStore replaces the persistence backend. A nil store disables persistence.
func SetStore(s ItemStore) {
	store = s
}

func loadItem(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil with no error when
// nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the live settings component, logging failures.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := SavedSettingsFrom(s)
	if err := SaveSettings(&saved); err != nil {
		zap.L().Warn("could not save settings", zap.Error(err))
		return
	}
	s.Dirty = false
}

// SavedSettingsFrom snapshots the settings component.
func SavedSettingsFrom(s *components.SettingsData) SavedSettings {
	return SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		DashVFX:    s.DashVFX,
		CameraStep: s.CameraStep,
		SFXVolume:  s.SFXVolume,
	}
}

// ApplySavedSettings copies loaded settings into the settings component.
// A zero camera step from an old save keeps the current step, and the -debug
// flag forces the overlay on whatever was saved.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Debug = saved.Debug || cfg.Debug.Overlay
	s.Fullscreen = saved.Fullscreen
	s.DashVFX = saved.DashVFX
	if saved.CameraStep > 0 {
		s.CameraStep = saved.CameraStep
	}
	s.SFXVolume = saved.SFXVolume
}

// LoadProgress returns the last arena name, or "" when none was saved.
func LoadProgress() (string, error) {
	var p SavedProgress
	if _, err := loadItem(progressKey, &p); err != nil {
		return "", err
	}
	return p.Arena, nil
}

// SaveProgress records the arena being played.
func SaveProgress(arena string) {
	if err := saveItem(progressKey, SavedProgress{Arena: arena}); err != nil {
		zap.L().Warn("could not save progress", zap.Error(err))
	}
}
