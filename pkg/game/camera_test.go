package game

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	c := NewCamera(10)
	c.SetViewport(1024, 768)
	return c
}

// TestCamera_Unproject tests NDC to world mapping for the corners and center
func TestCamera_Unproject(t *testing.T) {
	c := testCamera()

	// viewHeight 10 at 1024x768: halfH = 5, halfW = 5 * 1024/768.
	halfH := 5.0
	halfW := 5.0 * 1024.0 / 768.0

	tests := []struct {
		name         string
		ndcX, ndcY   float64
		wantX, wantY float64
	}{
		{"center", 0, 0, 0, 0},
		{"top-right", 1, 1, halfW, halfH},
		{"bottom-left", -1, -1, -halfW, -halfH},
		{"outside view (unclamped)", 2, 0, 2 * halfW, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := c.Unproject(tt.ndcX, tt.ndcY)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("Unproject(%v, %v) = (%v, %v), want (%v, %v)",
					tt.ndcX, tt.ndcY, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestCamera_WorldToScreen tests world to pixel mapping with y flipped
func TestCamera_WorldToScreen(t *testing.T) {
	c := testCamera()

	// World origin maps to the screen center.
	sx, sy := c.WorldToScreen(0, 0)
	if math.Abs(sx-512) > 1e-9 || math.Abs(sy-384) > 1e-9 {
		t.Errorf("WorldToScreen(0, 0) = (%v, %v), want (512, 384)", sx, sy)
	}

	// World +y is up, so it moves toward the top of the screen.
	_, syUp := c.WorldToScreen(0, 2)
	if syUp >= 384 {
		t.Errorf("WorldToScreen(0, 2) y = %v, want < 384", syUp)
	}
}

// TestCamera_RoundTrip tests Unproject followed by WorldToScreen
func TestCamera_RoundTrip(t *testing.T) {
	c := testCamera()

	for _, px := range []int{0, 100, 512, 1000} {
		for _, py := range []int{0, 384, 700} {
			ndcX := float64(px)/1024*2 - 1
			ndcY := -(float64(py)/768*2 - 1)
			wx, wy := c.Unproject(ndcX, ndcY)
			sx, sy := c.WorldToScreen(wx, wy)
			if math.Abs(sx-float64(px)) > 1e-6 || math.Abs(sy-float64(py)) > 1e-6 {
				t.Errorf("round trip (%d, %d) -> (%v, %v)", px, py, sx, sy)
			}
		}
	}
}

// TestCamera_PixelsPerUnit tests the world-to-pixel scale
func TestCamera_PixelsPerUnit(t *testing.T) {
	c := testCamera()
	if got := c.PixelsPerUnit(); math.Abs(got-76.8) > 1e-9 {
		t.Errorf("PixelsPerUnit() = %v, want 76.8", got)
	}
}

// TestCamera_DefaultViewHeight tests the fallback for non-positive heights
func TestCamera_DefaultViewHeight(t *testing.T) {
	c := NewCamera(0)
	c.SetViewport(100, 100)
	_, halfH := c.halfExtents()
	if math.Abs(halfH-DefaultViewHeight/2) > 1e-9 {
		t.Errorf("half height: got %v, want %v", halfH, DefaultViewHeight/2)
	}
}
