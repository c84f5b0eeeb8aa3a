package physics

import "math"

// DefaultMinDistSq is the squared-distance stability floor below which
// a body is treated as colocated with the attractor. The value is
// relative to the configured distance scale; configurations with much
// smaller orbits should lower it accordingly.
const DefaultMinDistSq = 1.0

// SemiImplicitEuler advances bodies under central-body gravity with a
// fixed timestep. The update order is what makes it symplectic:
// velocity first, then position using the already-updated velocity.
// That ordering bounds long-term energy drift where naive explicit
// Euler spirals outward.
type SemiImplicitEuler struct {
	G         float64
	MinDistSq float64
}

func NewSemiImplicitEuler(g float64) *SemiImplicitEuler {
	return &SemiImplicitEuler{
		G:         g,
		MinDistSq: DefaultMinDistSq,
	}
}

// Step advances one body by dt under the pull of central. When the
// squared distance to the attractor falls below MinDistSq the step is
// a no-op for this body: the geometry is degenerate and the update is
// skipped rather than allowed to blow up. This is a policy, not an
// error, and self-corrects once the geometry changes.
func (s *SemiImplicitEuler) Step(b *Body, central *Body, dt float64) {
	d := central.Pos.Sub(b.Pos)
	distSq := d.LenSq()
	if distSq < s.MinDistSq {
		return
	}

	dist := math.Sqrt(distSq)
	accel := s.G * central.Mass / distSq

	b.Vel = b.Vel.Add(d.Scale(accel * dt / dist))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
