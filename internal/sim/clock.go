package sim

import "time"

// Clock supplies monotonic wall time in seconds. The scheduler only
// ever looks at differences between readings, so the epoch is
// arbitrary.
type Clock interface {
	Now() float64
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock backed by the runtime's monotonic reading.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// FakeClock is a hand-advanced Clock for tests.
type FakeClock struct {
	T float64
}

func (c *FakeClock) Now() float64 { return c.T }

func (c *FakeClock) Advance(d float64) { c.T += d }
