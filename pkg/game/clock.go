package game

import (
	"time"

	"github.com/gonewx/imagetrail/internal/trail"
)

// NewClock returns a trail.Clock reporting milliseconds elapsed since the
// call. time.Since reads the runtime's monotonic clock, so the returned
// values never decrease even if the wall clock is adjusted.
func NewClock() trail.Clock {
	start := time.Now()
	return func() int64 {
		return time.Since(start).Milliseconds()
	}
}
