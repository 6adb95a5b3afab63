package core

import "time"

// Clock is a monotonic time source. Now returns the time elapsed since an
// arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

// TickClock derives time from a tick counter at a fixed tick rate.
// Time is computed from the counter rather than accumulated, so after
// exactly N*rate ticks it reads exactly N seconds.
type TickClock struct {
	ticks uint64
	rate  int
}

// NewTickClock creates a tick clock at the given ticks per second.
// Non-positive rates fall back to 60.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{rate: rate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c *TickClock) Ticks() uint64 {
	return c.ticks
}

// Now returns the elapsed simulated time.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.rate)
}

// WallClock reads the process monotonic clock.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a wall clock whose origin is the moment of creation.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the wall time elapsed since creation.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}
