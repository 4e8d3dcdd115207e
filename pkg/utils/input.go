// Package utils provides small shared helpers: easing curves and pointer
// coordinate conversion.
package utils

import "github.com/hajimehoshi/ebiten/v2"

// ScreenToNDC converts a pixel coordinate relative to the top-left corner of
// a screenW x screenH viewport into normalized device coordinates: origin at
// the viewport center, x and y in [-1, 1] inside the viewport, y pointing up
// (inverted relative to screen space). Coordinates outside the viewport map
// outside [-1, 1] and are returned unclamped.
func ScreenToNDC(x, y, screenW, screenH int) (ndcX, ndcY float64) {
	ndcX = float64(x)/float64(screenW)*2 - 1
	ndcY = -(float64(y)/float64(screenH)*2 - 1)
	return ndcX, ndcY
}

// CursorNDC returns the current cursor position in normalized device
// coordinates for the given logical screen size.
func CursorNDC(screenW, screenH int) (float64, float64) {
	x, y := ebiten.CursorPosition()
	return ScreenToNDC(x, y, screenW, screenH)
}
