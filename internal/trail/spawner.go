package trail

import (
	"math/rand"
	"time"
)

// Spawner implements the spawn policy: pick a resource uniformly at random,
// size the particle from the resource's aspect ratio, project the pointer
// position into the world, stamp the birth time and submit the result to the
// pool.
type Spawner struct {
	pool      *Pool
	clock     Clock
	unproject Unprojector
	rng       *rand.Rand

	baseHeight float64
	lifetimeMs int64
}

// NewSpawner creates a spawner feeding the given pool.
//
// rng selects the resource index; passing nil uses a time-seeded generator.
// Tests inject a seeded *rand.Rand for determinism. Non-positive baseHeight
// or lifetimeMs fall back to the package defaults.
func NewSpawner(pool *Pool, clock Clock, unproject Unprojector, rng *rand.Rand, baseHeight float64, lifetimeMs int64) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if baseHeight <= 0 {
		baseHeight = DefaultBaseHeight
	}
	if lifetimeMs <= 0 {
		lifetimeMs = DefaultLifetimeMs
	}
	return &Spawner{
		pool:       pool,
		clock:      clock,
		unproject:  unproject,
		rng:        rng,
		baseHeight: baseHeight,
		lifetimeMs: lifetimeMs,
	}
}

// Spawn creates a particle at the unprojected pointer position and adds it to
// the pool. ndcX and ndcY are passed through to the Unprojector unclamped;
// out-of-range values cannot corrupt any invariant.
//
// With an empty resource slice Spawn does nothing and reports false. That is
// not an error: it models the startup window in which pointer events arrive
// before any resource has finished loading.
func (s *Spawner) Spawn(ndcX, ndcY float64, resources []Resource) (Particle, bool) {
	if len(resources) == 0 {
		return Particle{}, false
	}

	idx := s.rng.Intn(len(resources))

	// Unknown dimensions (still loading) default to a square aspect.
	aspect := 1.0
	if r := resources[idx]; r.Width > 0 && r.Height > 0 {
		aspect = float64(r.Width) / float64(r.Height)
	}

	worldX, worldY := s.unproject(ndcX, ndcY)

	pt := Particle{
		ID:            s.pool.NextID(),
		X:             worldX,
		Y:             worldY,
		BornAt:        s.clock(),
		LifetimeMs:    s.lifetimeMs,
		BaseWidth:     s.baseHeight * aspect,
		BaseHeight:    s.baseHeight,
		ResourceIndex: idx,
	}
	s.pool.Add(pt)
	return pt, true
}
