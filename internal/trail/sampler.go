package trail

import "github.com/gonewx/imagetrail/pkg/utils"

// Animation curve shape. The intro scale-in completes over the first 28% of
// the lifetime, starting at 18% of the target size; opacity holds at 1 until
// 70% of the lifetime and then fades linearly to 0. At t=1 the particle is
// fully grown and fully transparent, so removal by the sweep never pops.
const (
	introPortion = 0.28
	introFloor   = 0.18
	fadeStart    = 0.7
)

// Transform is the per-frame visual state derived for one particle.
type Transform struct {
	// ScaleX, ScaleY are the particle's current visual dimensions in world
	// units (base size multiplied by the intro scale factor).
	ScaleX float64
	ScaleY float64
	// Alpha is the current opacity in [0, 1].
	Alpha float64
}

// Sample derives the particle's current transform from its age.
//
// Sample is a pure function of (particle, now): nothing is cached on the
// particle itself, so there is no stale visual state to invalidate. It is
// called once per live particle per frame by the presentation layer.
func Sample(p Particle, now int64) Transform {
	t := 0.0
	if p.LifetimeMs > 0 {
		t = utils.Clamp01(float64(p.Age(now)) / float64(p.LifetimeMs))
	}

	// Cubic ease-out: fast initial growth decelerating into full size.
	eased := utils.EaseOutCubic(utils.Clamp01(t / introPortion))
	scale := introFloor + (1-introFloor)*eased

	alpha := 1.0
	if t >= fadeStart {
		alpha = 1 - (t-fadeStart)/(1-fadeStart)
	}

	return Transform{
		ScaleX: p.BaseWidth * scale,
		ScaleY: p.BaseHeight * scale,
		Alpha:  alpha,
	}
}
