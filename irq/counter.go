package irq

import "sync/atomic"

// Counter is a free-running tick counter bumped from the timer handler.
type Counter struct {
	ticks atomic.Uint64
}

// Inc advances the counter by one tick and returns the new value.
func (c *Counter) Inc() uint64 { return c.ticks.Add(1) }

// Load returns the current tick count.
func (c *Counter) Load() uint64 { return c.ticks.Load() }

// Mix folds the counter into seed. Used to derive randomizer seeds from the
// time a human took to press a button.
func (c *Counter) Mix(seed uint32) uint32 {
	t := c.ticks.Load()
	seed ^= uint32(t) ^ uint32(t>>32)
	seed ^= seed << 13
	seed ^= seed >> 17
	seed ^= seed << 5
	return seed
}
