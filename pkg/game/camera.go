package game

import "github.com/gonewx/imagetrail/pkg/utils"

// DefaultViewHeight is the vertical extent of the camera's world viewport in
// world units. With the default particle base height of 1.35 a fully grown
// particle covers roughly an eighth of the window height.
const DefaultViewHeight = 10.0

// Camera models the fixed orthographic 2D camera of the trail scene.
//
// The world origin sits at the center of the view, world y points up. The
// horizontal extent follows the viewport's pixel aspect ratio, so a pointer
// at a window corner always unprojects to the matching world corner.
type Camera struct {
	viewHeight float64

	screenW int
	screenH int
}

// NewCamera creates a camera with the given world viewport height.
// Non-positive values fall back to DefaultViewHeight.
func NewCamera(viewHeight float64) *Camera {
	if viewHeight <= 0 {
		viewHeight = DefaultViewHeight
	}
	return &Camera{viewHeight: viewHeight}
}

// SetViewport records the pixel size of the render target. Must be called
// before Unproject or WorldToScreen; the app sets it from the logical window
// size at startup.
func (c *Camera) SetViewport(screenW, screenH int) {
	c.screenW = screenW
	c.screenH = screenH
}

// halfExtents returns half the world viewport size on each axis.
func (c *Camera) halfExtents() (halfW, halfH float64) {
	halfH = c.viewHeight / 2
	halfW = halfH
	if c.screenH > 0 {
		halfW = halfH * float64(c.screenW) / float64(c.screenH)
	}
	return halfW, halfH
}

// Unproject maps a normalized device coordinate to a world position.
// Input is not clamped: NDC values outside [-1, 1] land outside the view.
func (c *Camera) Unproject(ndcX, ndcY float64) (worldX, worldY float64) {
	halfW, halfH := c.halfExtents()
	worldX = utils.Lerp(-halfW, halfW, (ndcX+1)/2)
	worldY = utils.Lerp(-halfH, halfH, (ndcY+1)/2)
	return worldX, worldY
}

// WorldToScreen maps a world position to a pixel coordinate (y down).
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	halfW, halfH := c.halfExtents()
	screenX = (worldX + halfW) / (2 * halfW) * float64(c.screenW)
	screenY = (1 - (worldY+halfH)/(2*halfH)) * float64(c.screenH)
	return screenX, screenY
}

// PixelsPerUnit returns the scale from world units to screen pixels.
func (c *Camera) PixelsPerUnit() float64 {
	return float64(c.screenH) / c.viewHeight
}
