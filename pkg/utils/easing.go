package utils

import "math"

// Easing functions.
//
// An easing function takes a progress value t in [0, 1] and returns the eased
// value in [0, 1], shaping the speed curve of an animation.
//
// Reference: https://easings.net/

// EaseLinear returns t unchanged (constant speed).
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and decelerates toward the end.
// f(t) = 1 - (1-t)^3
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic starts slow and accelerates toward the end.
// f(t) = t^3
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutQuad starts fast and decelerates, softer than EaseOutCubic.
// f(t) = 1 - (1-t)^2
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp interpolates linearly between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to the [0, 1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
