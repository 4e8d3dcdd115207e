// Package trail implements the particle lifecycle behind the pointer image
// trail: spawning at the projected pointer position, population-cap eviction,
// interval-gated expiry sweeps, and the per-frame intro-scale/fade-out
// animation curve.
//
// The package is a pure in-memory library with no I/O surface of its own.
// Time, camera projection, resource loading and rendering are collaborators
// supplied by the caller.
package trail

// Clock returns monotonically non-decreasing milliseconds since an arbitrary
// epoch. All lifecycle arithmetic in this package is based on a single Clock.
type Clock func() int64

// Unprojector maps a normalized device coordinate (origin at the viewport
// center, x and y conventionally in [-1, 1], y pointing up) to a 2D world
// position using the active camera. The package treats it as a black box and
// never clamps its input.
type Unprojector func(ndcX, ndcY float64) (worldX, worldY float64)

// Resource describes the intrinsic pixel dimensions of one entry in the
// externally owned pool of visual resources. A zero Width or Height means the
// dimensions are not known yet (resource still loading); the spawner then
// assumes a square aspect ratio.
type Resource struct {
	Width  int
	Height int
}

// Particle is a single spawned, time-limited visual item.
//
// Every field is fixed at creation and never mutated afterwards. Time-varying
// visual state (scale, opacity) is derived per frame by Sample instead of
// being stored here, so a Particle can be copied and shared freely.
type Particle struct {
	// ID is unique and strictly increasing in creation order. Ids are never
	// reused, including across cap evictions and sweeps.
	ID uint64

	// X, Y is the world position produced by the Unprojector at spawn time.
	X float64
	Y float64

	// BornAt is the Clock timestamp (ms) captured at creation.
	BornAt int64

	// LifetimeMs is how long the particle is eligible to exist. Currently the
	// same for every particle, but kept per-particle to allow variation later.
	LifetimeMs int64

	// BaseWidth, BaseHeight are the natural (unscaled) visual dimensions in
	// world units, derived from the aspect ratio of the assigned resource.
	BaseWidth  float64
	BaseHeight float64

	// ResourceIndex indexes the externally owned resource pool.
	ResourceIndex int
}

// Age returns the particle's age in milliseconds at the given time.
func (p Particle) Age(now int64) int64 {
	return now - p.BornAt
}

// Expired reports whether the particle's age has reached its lifetime.
// An expired particle must not be rendered or retained.
func (p Particle) Expired(now int64) bool {
	return p.Age(now) >= p.LifetimeMs
}
