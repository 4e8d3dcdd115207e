// Package config defines the YAML-backed tuning configuration of the trail
// app. Every value has a compiled-in default, so the app runs without any
// config file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig controls the application window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TrailTuning controls the particle lifecycle. Zero values mean "use the
// built-in default" (see internal/trail constants).
type TrailTuning struct {
	// MaxParticles caps the live particle population.
	MaxParticles int `yaml:"maxParticles"`
	// LifetimeMs is how long each spawned particle lives.
	LifetimeMs int64 `yaml:"lifetimeMs"`
	// SweepIntervalMs gates the periodic expiry sweep.
	SweepIntervalMs int64 `yaml:"sweepIntervalMs"`
	// BaseHeight is the natural particle height in world units.
	BaseHeight float64 `yaml:"baseHeight"`
	// ViewHeight is the camera's world viewport height in world units.
	ViewHeight float64 `yaml:"viewHeight"`
}

// TrailConfig is the root structure of assets/config/trail.yaml.
type TrailConfig struct {
	Window WindowConfig `yaml:"window"`
	Trail  TrailTuning  `yaml:"trail"`
}

// DefaultTrailConfig returns the built-in configuration. The trail numbers
// mirror the internal/trail defaults.
func DefaultTrailConfig() *TrailConfig {
	return &TrailConfig{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Image Trail",
		},
		Trail: TrailTuning{
			MaxParticles:    140,
			LifetimeMs:      1200,
			SweepIntervalMs: 100,
			BaseHeight:      1.35,
			ViewHeight:      10,
		},
	}
}

// LoadTrailConfig reads the configuration from the given YAML file, applied
// on top of the defaults so omitted keys keep their built-in values. On error
// it returns the defaults together with the error; callers typically log the
// error and continue with the returned config.
func LoadTrailConfig(path string) (*TrailConfig, error) {
	cfg := DefaultTrailConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read trail config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultTrailConfig(), fmt.Errorf("failed to parse trail config %s: %w", path, err)
	}

	return cfg, nil
}
