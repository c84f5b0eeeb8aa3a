// Package trail records the historical path of simulated bodies.
//
// A trail is append-only and unbounded: disabling trail rendering
// never discards recorded points, so re-enabling shows the full path
// again. Visibility is not stored here; the simulation owns a single
// flag covering every body uniformly.
package trail

import "github.com/san-kum/orbitsim/internal/physics"

// Trail is the ordered sequence of past positions of one body.
// Insertion order is chronological order. Growth is amortized through
// the backing slice; entries are never evicted or deduplicated.
type Trail struct {
	points []physics.Vec2
}

// New returns an empty trail with room for the first few thousand
// steps before the backing array regrows.
func New() *Trail {
	return &Trail{points: make([]physics.Vec2, 0, 1024)}
}

// Append records a position at the end of the trail. It always
// succeeds.
func (t *Trail) Append(p physics.Vec2) {
	t.points = append(t.points, p)
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns the recorded positions in chronological order. The
// slice is shared with the trail's storage; callers must treat it as
// read-only and not retain it across Append calls.
func (t *Trail) Points() []physics.Vec2 {
	return t.points
}

// Last returns the most recent position, if any.
func (t *Trail) Last() (physics.Vec2, bool) {
	if len(t.points) == 0 {
		return physics.Vec2{}, false
	}
	return t.points[len(t.points)-1], true
}

// Reset discards all recorded positions. Used only when the whole
// simulation is reset to its initial configuration, never on
// visibility toggles.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}
