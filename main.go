// Command imagetrail renders a stream of short-lived images trailing the
// mouse cursor. Each image spawns at the pointer's projected world position,
// scales in with a cubic ease-out and fades away over its fixed lifetime.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose      Enable log output and the debug HUD
//	--fullscreen   Start in fullscreen mode
//	--config       Path to the tuning config (default assets/config/trail.yaml)
//	--resources    Path to the image manifest (default assets/config/resources.yaml)
//
// Controls:
//
//	Mouse move  - Spawn trail images
//	P           - Toggle spawning
//	F           - Toggle fullscreen
//	Q/Escape    - Quit
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/imagetrail/pkg/app"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging and debug HUD")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	configFlag     = flag.String("config", "assets/config/trail.yaml", "Path to the tuning config")
	resourcesFlag  = flag.String("resources", "assets/config/resources.yaml", "Path to the image manifest")
)

func main() {
	flag.Parse()

	// Settings storage; a failure here only disables persistence.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "imagetrail"})
	if err != nil {
		log.Printf("Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}

	a, err := app.NewApp(app.Config{
		Verbose:       *verboseFlag,
		Fullscreen:    *fullscreenFlag,
		ConfigPath:    *configFlag,
		ResourcesPath: *resourcesFlag,
	}, gdataManager)
	if err != nil {
		log.Fatal("Failed to initialize app:", err)
	}

	ebiten.SetWindowSize(a.WindowSize())
	ebiten.SetWindowTitle(a.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.Fullscreen())

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, app.ErrQuit) {
		log.Fatal(err)
	}
}
