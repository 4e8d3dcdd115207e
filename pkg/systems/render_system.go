// Package systems contains the per-frame presentation layer of the trail app.
package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/imagetrail/internal/trail"
	"github.com/gonewx/imagetrail/pkg/game"
)

// RenderSystem draws the current particle snapshot each frame.
//
// It owns no particle state: every frame it re-reads the pool snapshot handed
// to Draw and derives each particle's transform through trail.Sample, so
// there is never stale visual state to invalidate (explicit pull model).
type RenderSystem struct {
	camera *game.Camera
	images []*ebiten.Image
}

// NewRenderSystem creates a render system drawing through the given camera.
// images is the loaded resource pool, index-aligned with the descriptors the
// spawner picks from.
func NewRenderSystem(camera *game.Camera, images []*ebiten.Image) *RenderSystem {
	return &RenderSystem{
		camera: camera,
		images: images,
	}
}

// Draw renders every live particle onto screen, in creation order.
func (s *RenderSystem) Draw(screen *ebiten.Image, particles []trail.Particle, now int64) {
	ppu := s.camera.PixelsPerUnit()

	for _, pt := range particles {
		if pt.ResourceIndex < 0 || pt.ResourceIndex >= len(s.images) {
			continue
		}
		img := s.images[pt.ResourceIndex]
		if img == nil {
			continue
		}

		tr := trail.Sample(pt, now)
		if tr.Alpha <= 0 {
			continue
		}

		bounds := img.Bounds()
		pixelW := tr.ScaleX * ppu
		pixelH := tr.ScaleY * ppu

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		// Scale the texture to the sampled world size, then center it on the
		// particle's screen position.
		op.GeoM.Scale(pixelW/float64(bounds.Dx()), pixelH/float64(bounds.Dy()))
		screenX, screenY := s.camera.WorldToScreen(pt.X, pt.Y)
		op.GeoM.Translate(screenX-pixelW/2, screenY-pixelH/2)
		op.ColorScale.ScaleAlpha(float32(tr.Alpha))

		screen.DrawImage(img, op)
	}
}
