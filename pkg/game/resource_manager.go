package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/imagetrail/internal/trail"
)

// ImageResource is a single entry of the resource manifest.
type ImageResource struct {
	ID   string `yaml:"id"`   // Unique identifier (e.g. "IMAGE_TRAIL_01")
	Path string `yaml:"path"` // File path relative to base_path
}

// ResourceConfig is the top-level structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	images:
//	  - id: IMAGE_TRAIL_01
//	    path: images/trail/01.png
type ResourceConfig struct {
	Version  string          `yaml:"version"`
	BasePath string          `yaml:"base_path"`
	Images   []ImageResource `yaml:"images"`
}

// ResourceManager loads and caches the fixed pool of trail images.
//
// Images are loaded once at startup from the YAML manifest. A manifest entry
// that fails to load is logged and skipped rather than treated as fatal, so
// the app comes up with whatever subset loaded successfully; the trail core
// sees only the loaded set and silently skips spawning while it is empty.
//
// Not safe for concurrent use: the caches are plain maps. All loading happens
// on the main goroutine before the game loop starts.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image

	config *ResourceConfig

	// Loaded resource pool, index-aligned: ids[i] names images[i], and
	// descriptors[i] carries its intrinsic dimensions for the trail core.
	ids         []string
	images      []*ebiten.Image
	descriptors []trail.Resource
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadResourceConfig parses the YAML resource manifest at the given path.
func (rm *ResourceManager) LoadResourceConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", path, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", path, err)
	}

	rm.config = &cfg
	log.Printf("[ResourceManager] Loaded resource config %s: %d images", path, len(cfg.Images))
	return nil
}

// Config returns the parsed resource manifest, or nil before
// LoadResourceConfig has succeeded.
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// LoadImages loads every image listed in the manifest into the resource pool.
// Entries that fail to open or decode are logged and skipped; LoadImages only
// errors when no manifest has been loaded.
func (rm *ResourceManager) LoadImages() error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded")
	}

	for _, res := range rm.config.Images {
		path := filepath.Join(rm.config.BasePath, res.Path)
		img, err := rm.LoadImage(path)
		if err != nil {
			log.Printf("[ResourceManager] Warning: skipping %s: %v", res.ID, err)
			continue
		}

		bounds := img.Bounds()
		rm.ids = append(rm.ids, res.ID)
		rm.images = append(rm.images, img)
		rm.descriptors = append(rm.descriptors, trail.Resource{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}

	log.Printf("[ResourceManager] Loaded %d/%d trail images", len(rm.images), len(rm.config.Images))
	return nil
}

// LoadImage loads and caches a single image file (PNG or JPEG).
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Images returns the loaded trail images in manifest order (failed entries
// omitted). The slice is index-aligned with Descriptors.
func (rm *ResourceManager) Images() []*ebiten.Image {
	return rm.images
}

// Descriptors returns the intrinsic dimensions of the loaded images for the
// trail core, index-aligned with Images.
func (rm *ResourceManager) Descriptors() []trail.Resource {
	return rm.descriptors
}
