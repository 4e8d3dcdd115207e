package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata creates a gdata manager rooted in a temp directory.
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings tests the default values
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.SpawnOnMove {
		t.Error("SpawnOnMove: got false, want true")
	}
}

// TestNewSettingsManager tests normal initialization
func TestNewSettingsManager(t *testing.T) {
	manager := openTestGdata(t, "test_imagetrail_settings")

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if !settings.SpawnOnMove {
		t.Error("initial SpawnOnMove: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata tests the degraded mode without storage
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.Fullscreen {
		t.Error("degraded mode Fullscreen: got true, want false")
	}

	// Save must be a silent no-op.
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
}

// TestSettingsLoadSave tests the save/load round trip through gdata
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestGdata(t, "test_imagetrail_settings_load_save")

	sm1, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetSpawnOnMove(false)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A fresh manager over the same storage sees the saved values.
	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("loaded Fullscreen: got false, want true")
	}
	if settings.SpawnOnMove {
		t.Error("loaded SpawnOnMove: got true, want false")
	}
}
