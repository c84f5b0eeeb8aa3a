package sim

// Scheduler decouples the physics rate from the display rate. Each
// displayed frame contributes its measured wall time to an
// accumulator; the accumulator is drained in fixed-size steps, and
// whatever remains (always less than one step) carries over to the
// next frame. Physics therefore advances in exact, constant quanta no
// matter how irregular frame timing is.
type Scheduler struct {
	FixedDt      float64
	MaxFrameTime float64

	prev    float64
	acc     float64
	started bool
}

func NewScheduler(fixedDt, maxFrameTime float64) *Scheduler {
	return &Scheduler{
		FixedDt:      fixedDt,
		MaxFrameTime: maxFrameTime,
	}
}

// Advance feeds one frame's wall-clock reading into the accumulator
// and returns the number of fixed steps the caller must run before
// rendering. The frame time is clamped to MaxFrameTime so a stall
// (minimized window, debugger, scheduling hiccup) cannot trigger a
// runaway catch-up burst.
//
// The first call only establishes the time base and returns 0.
func (s *Scheduler) Advance(now float64) int {
	if !s.started {
		s.prev = now
		s.started = true
		return 0
	}

	frame := now - s.prev
	s.prev = now

	if frame < 0 {
		frame = 0
	}
	if frame > s.MaxFrameTime {
		frame = s.MaxFrameTime
	}
	s.acc += frame

	steps := 0
	for s.acc >= s.FixedDt {
		s.acc -= s.FixedDt
		steps++
	}
	if s.acc < 0 {
		s.acc = 0
	}
	return steps
}

// Accumulated returns the leftover un-simulated time, always in
// [0, FixedDt) after a call to Advance.
func (s *Scheduler) Accumulated() float64 {
	return s.acc
}

// Reset discards the accumulator and the time base; the next Advance
// re-establishes both. Used when the simulation restarts or resumes
// from pause.
func (s *Scheduler) Reset() {
	s.acc = 0
	s.started = false
}
