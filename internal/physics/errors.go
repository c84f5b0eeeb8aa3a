package physics

import "errors"

// Setup-time errors. Integration itself never fails: the only runtime
// edge case (a body colocated with the attractor) is handled by
// skipping the step.
var (
	// ErrDegenerateOrbit indicates a body placed on top of the attractor,
	// for which no circular orbit exists.
	ErrDegenerateOrbit = errors.New("physics: body coincides with attractor")

	// ErrNonPositiveMass indicates a body or attractor configured with
	// mass <= 0.
	ErrNonPositiveMass = errors.New("physics: mass must be positive")
)
