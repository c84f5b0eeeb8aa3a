package physics

import "math"

// CircularOrbitSpeed returns the speed v = sqrt(g*M/r) of a circular
// orbit at radial distance r around a central mass M. The
// gravitational constant g is in simulation units, pre-scaled to the
// chosen distance and time scale rather than the SI value.
//
// r must be positive: a body at the attractor has no defined orbit and
// the call fails with [ErrDegenerateOrbit]. This runs once at setup,
// so the failure is fatal to configuration, never retried.
func CircularOrbitSpeed(g, centralMass, r float64) (float64, error) {
	if centralMass <= 0 {
		return 0, ErrNonPositiveMass
	}
	if r <= 0 {
		return 0, ErrDegenerateOrbit
	}
	return math.Sqrt(g * centralMass / r), nil
}

// OrbitalVelocity returns the velocity that puts a body at pos on a
// circular counter-clockwise orbit around central. The result is
// purely tangential: perpendicular to the radius vector from the
// attractor to pos.
func OrbitalVelocity(g float64, central *Body, pos Vec2) (Vec2, error) {
	d := pos.Sub(central.Pos)
	r := d.Len()
	v, err := CircularOrbitSpeed(g, central.Mass, r)
	if err != nil {
		return Vec2{}, err
	}
	// Rotate the radial unit vector by +90 degrees for CCW motion.
	return Vec2{X: -d.Y / r * v, Y: d.X / r * v}, nil
}

// SpecificAngularMomentum returns L = r x v per unit mass for a body
// relative to the attractor. Central-body gravity conserves this
// quantity, which makes it the primary drift diagnostic.
func SpecificAngularMomentum(central, b *Body) float64 {
	d := b.Pos.Sub(central.Pos)
	return d.X*b.Vel.Y - d.Y*b.Vel.X
}

// SpecificEnergy returns kinetic plus gravitational potential energy
// per unit mass for a body in the central field.
func SpecificEnergy(g float64, central, b *Body) float64 {
	ke := 0.5 * b.Vel.LenSq()
	r := b.Pos.Sub(central.Pos).Len()
	if r == 0 {
		return ke
	}
	return ke - g*central.Mass/r
}
