package utils

import (
	"math"
	"testing"
)

// TestEaseLinear tests the identity easing
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"start", 0.0, 0.0},
		{"quarter", 0.25, 0.25},
		{"middle", 0.5, 0.5},
		{"end", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseLinear(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic tests the cubic ease-out curve
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"start", 0.0, 0.0},
		{"middle", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
		{"end", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	// Fast start: in the first half the eased value leads the linear one.
	t.Run("leads linear early", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if eased := EaseOutCubic(p); eased <= EaseLinear(p) {
				t.Errorf("EaseOutCubic(%v) = %v, want > %v", p, eased, p)
			}
		}
	})
}

// TestEaseInCubic tests the cubic ease-in curve
func TestEaseInCubic(t *testing.T) {
	if got := EaseInCubic(0.5); math.Abs(got-0.125) > 0.001 {
		t.Errorf("EaseInCubic(0.5) = %v, want 0.125", got)
	}
	if got := EaseInCubic(1.0); math.Abs(got-1.0) > 0.001 {
		t.Errorf("EaseInCubic(1.0) = %v, want 1.0", got)
	}
}

// TestEaseOutQuad tests the quadratic ease-out curve
func TestEaseOutQuad(t *testing.T) {
	if got := EaseOutQuad(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("EaseOutQuad(0.5) = %v, want 0.75", got)
	}
}

// TestLerp tests linear interpolation
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-5, 5, 0.5, 0},
		{10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.expected)
		}
	}
}

// TestClamp01 tests range clamping
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
