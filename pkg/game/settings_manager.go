package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the user-facing toggles of the trail app. They are global,
// not tied to a particular user or session.
type Settings struct {
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`
	// SpawnOnMove spawns a particle whenever the cursor moves. Turning it off
	// pauses the trail without clearing live particles.
	SpawnOnMove bool `yaml:"spawnOnMove"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen:  false,
		SpawnOnMove: true,
	}
}

// SettingsManager loads and saves Settings through gdata's cross-platform
// storage, marshalled as YAML.
type SettingsManager struct {
	gdataManager *gdata.Manager // may be nil (degraded mode, memory only)
	settings     *Settings
}

// Storage location within gdata.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and loads any previously
// saved settings. A nil gdataManager selects degraded mode: settings live in
// memory only and Save becomes a no-op. A load failure is not fatal; the
// defaults are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads the settings from gdata. Missing storage or a missing settings
// object leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save persists the current settings to gdata. In degraded mode Save is a
// silent no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings returns the current settings instance.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetFullscreen updates the fullscreen toggle in memory. Call Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetSpawnOnMove updates the spawn toggle in memory. Call Save to persist.
func (sm *SettingsManager) SetSpawnOnMove(enabled bool) {
	sm.settings.SpawnOnMove = enabled
}
