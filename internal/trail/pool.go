package trail

// Default tuning values. Pool and Spawner accept overrides through their
// constructors; the shipped assets/config/trail.yaml carries the same numbers.
const (
	// DefaultMaxParticles is the population cap of the live set.
	DefaultMaxParticles = 140
	// DefaultSweepIntervalMs gates how often Sweep actually filters the live
	// set. At 60+ Hz frame rates a per-frame filter is wasted work when the
	// lifetime is on the order of a second; sampling every 100 ms bounds the
	// worst-case overstay to 100 ms past expiry, after the fade curve has
	// already reached full transparency.
	DefaultSweepIntervalMs = 100
	// DefaultLifetimeMs is how long a spawned particle is eligible to exist.
	DefaultLifetimeMs = 1200
	// DefaultBaseHeight is the natural particle height in world units.
	DefaultBaseHeight = 1.35
)

// Pool owns the ordered collection of live particles. It enforces the
// population cap on insertion, performs the interval-gated expiry sweep, and
// hands out monotonically increasing particle ids.
//
// The collection is kept in creation order. Order is used for oldest-first
// eviction and is otherwise not significant to rendering.
//
// Every mutation builds a new backing array, so a snapshot retained by the
// presentation layer from a previous frame is never aliased: the renderer
// re-reads Snapshot each frame and may detect changes by slice identity
// (explicit pull model, no observer wiring).
//
// Pool is not safe for concurrent use. Spawning and sweeping are serialized
// by the single-threaded game loop.
type Pool struct {
	particles []Particle

	nextID uint64

	maxParticles    int
	sweepIntervalMs int64
	lastSweepAt     int64
}

// NewPool creates a pool with the given population cap and sweep interval.
// Non-positive values fall back to the package defaults.
func NewPool(maxParticles int, sweepIntervalMs int64) *Pool {
	if maxParticles <= 0 {
		maxParticles = DefaultMaxParticles
	}
	if sweepIntervalMs <= 0 {
		sweepIntervalMs = DefaultSweepIntervalMs
	}
	return &Pool{
		maxParticles:    maxParticles,
		sweepIntervalMs: sweepIntervalMs,
	}
}

// NextID allocates the next particle id. Ids start at 1, are strictly
// increasing and are never reused.
func (p *Pool) NextID() uint64 {
	p.nextID++
	return p.nextID
}

// Add appends the particle to the end of the live set. If the resulting size
// exceeds the cap, the oldest particles (by creation order) are discarded
// until the set is back at the cap; the relative order of the survivors is
// preserved. Add always succeeds.
func (p *Pool) Add(pt Particle) {
	drop := 0
	if over := len(p.particles) + 1 - p.maxParticles; over > 0 {
		drop = over
	}
	next := make([]Particle, 0, len(p.particles)+1-drop)
	next = append(next, p.particles[drop:]...)
	next = append(next, pt)
	p.particles = next
}

// Sweep removes every particle whose age has reached its lifetime.
//
// Calls less than the sweep interval after the previous effective sweep are
// no-ops, so calling Sweep once per frame is cheap. Surviving particles keep
// their relative order.
func (p *Pool) Sweep(now int64) {
	if now-p.lastSweepAt < p.sweepIntervalMs {
		return
	}
	p.lastSweepAt = now

	expired := 0
	for _, pt := range p.particles {
		if pt.Expired(now) {
			expired++
		}
	}
	if expired == 0 {
		return
	}

	alive := make([]Particle, 0, len(p.particles)-expired)
	for _, pt := range p.particles {
		if !pt.Expired(now) {
			alive = append(alive, pt)
		}
	}
	p.particles = alive
}

// Snapshot returns the current live set in creation order. The slice is a
// read-only view: callers must not mutate it and must not retain it across
// frames (a fresh snapshot is produced whenever the set changes).
func (p *Pool) Snapshot() []Particle {
	return p.particles
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	return len(p.particles)
}
