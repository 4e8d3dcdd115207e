// Package app provides the application wrapper of the trail toy.
//
// It pulls the initialization logic out of package main: config and settings
// loading, resource loading, and the wiring between the pointer input, the
// trail core and the render system.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/imagetrail/internal/trail"
	"github.com/gonewx/imagetrail/pkg/config"
	"github.com/gonewx/imagetrail/pkg/game"
	"github.com/gonewx/imagetrail/pkg/systems"
	"github.com/gonewx/imagetrail/pkg/utils"
)

// ErrQuit signals a user-requested shutdown out of ebiten.RunGame.
var ErrQuit = errors.New("quit requested")

// Config defines the application startup options.
type Config struct {
	// Verbose enables log output and the debug HUD.
	Verbose bool
	// Fullscreen starts in fullscreen regardless of the saved setting.
	Fullscreen bool
	// ConfigPath points at the trail.yaml tuning file.
	ConfigPath string
	// ResourcesPath points at the resources.yaml image manifest.
	ResourcesPath string
}

// App wires the trail core to its collaborators and implements ebiten.Game.
type App struct {
	cfg *config.TrailConfig

	pool    *trail.Pool
	spawner *trail.Spawner
	clock   trail.Clock

	camera          *game.Camera
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	renderSystem    *systems.RenderSystem

	// Last seen cursor position, for move detection.
	cursorX   int
	cursorY   int
	hasCursor bool

	verbose bool
}

// NewApp creates and wires the application.
//
// gdataManager may be nil; settings then live in memory only. A missing
// tuning config or missing images are logged and tolerated: the app runs
// with defaults and whatever image subset loaded.
func NewApp(cfg Config, gdataManager *gdata.Manager) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	trailCfg, err := config.LoadTrailConfig(cfg.ConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig(cfg.ResourcesPath); err != nil {
		// No manifest means no images; the spawner stays silently idle.
		log.Printf("[App] Warning: %v (trail will be empty)", err)
	} else if err := resourceManager.LoadImages(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	camera := game.NewCamera(trailCfg.Trail.ViewHeight)
	camera.SetViewport(trailCfg.Window.Width, trailCfg.Window.Height)

	clock := game.NewClock()
	pool := trail.NewPool(trailCfg.Trail.MaxParticles, trailCfg.Trail.SweepIntervalMs)
	spawner := trail.NewSpawner(pool, clock, camera.Unproject, nil,
		trailCfg.Trail.BaseHeight, trailCfg.Trail.LifetimeMs)

	a := &App{
		cfg:             trailCfg,
		pool:            pool,
		spawner:         spawner,
		clock:           clock,
		camera:          camera,
		resourceManager: resourceManager,
		settingsManager: settingsManager,
		renderSystem:    systems.NewRenderSystem(camera, resourceManager.Images()),
		verbose:         cfg.Verbose,
	}

	if cfg.Fullscreen {
		settingsManager.GetSettings().Fullscreen = true
	}

	log.Printf("[App] Initialized: %d images, cap %d, lifetime %dms",
		len(resourceManager.Images()), trailCfg.Trail.MaxParticles, trailCfg.Trail.LifetimeMs)
	return a, nil
}

// WindowSize returns the configured logical window size.
func (a *App) WindowSize() (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// WindowTitle returns the configured window title.
func (a *App) WindowTitle() string {
	return a.cfg.Window.Title
}

// Fullscreen reports whether the app should start fullscreen.
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Update advances the app by one tick: handles input, spawns on pointer
// movement and runs the periodic expiry sweep.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		enabled := !a.settingsManager.GetSettings().Fullscreen
		a.settingsManager.SetFullscreen(enabled)
		ebiten.SetFullscreen(enabled)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		enabled := !a.settingsManager.GetSettings().SpawnOnMove
		a.settingsManager.SetSpawnOnMove(enabled)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		log.Printf("[App] Spawn on move: %v", enabled)
	}

	a.handlePointer()

	a.pool.Sweep(a.clock())
	return nil
}

// handlePointer spawns a particle when the cursor moved since the last tick.
func (a *App) handlePointer() {
	x, y := ebiten.CursorPosition()
	moved := a.hasCursor && (x != a.cursorX || y != a.cursorY)
	a.cursorX, a.cursorY = x, y
	a.hasCursor = true

	if !moved || !a.settingsManager.GetSettings().SpawnOnMove {
		return
	}

	ndcX, ndcY := utils.ScreenToNDC(x, y, a.cfg.Window.Width, a.cfg.Window.Height)
	a.spawner.Spawn(ndcX, ndcY, a.resourceManager.Descriptors())
}

// Draw renders the current particle snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 24, A: 255})

	a.renderSystem.Draw(screen, a.pool.Snapshot(), a.clock())

	if a.verbose {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("particles: %d/%d", a.pool.Len(), a.cfg.Trail.MaxParticles), 10, 10)
		ebitenutil.DebugPrintAt(screen,
			"Move mouse to spawn  P = pause  F = fullscreen  Q = quit", 10, 30)
	}
}

// Layout returns the logical screen size, independent of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
