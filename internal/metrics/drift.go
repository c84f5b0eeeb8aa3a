// Package metrics provides per-body conservation diagnostics for
// headless runs and tests.
package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
)

// Metric observes one body every physics step and reduces the
// observations to a single value.
type Metric interface {
	Name() string
	Observe(t float64, central, b *physics.Body)
	Value() float64
	Reset()
}

// AngularMomentumDrift tracks the worst relative deviation of a body's
// specific angular momentum from its first observed value. Central
// gravity conserves L, so anything beyond roundoff indicates an
// integrator defect.
type AngularMomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (m *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (m *AngularMomentumDrift) Observe(t float64, central, b *physics.Body) {
	l := physics.SpecificAngularMomentum(central, b)
	if m.samples == 0 {
		m.initial = l
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(l-m.initial) / math.Abs(m.initial)
		if drift > m.maxDrift {
			m.maxDrift = drift
		}
	}
}

func (m *AngularMomentumDrift) Value() float64 { return m.maxDrift }

func (m *AngularMomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// EnergyDrift tracks the worst relative deviation of specific orbital
// energy. The symplectic stepper keeps this oscillating in a bounded
// band; growth over simulated time indicates a too-large timestep.
type EnergyDrift struct {
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g float64) *EnergyDrift {
	return &EnergyDrift{g: g}
}

func (m *EnergyDrift) Name() string { return "energy_drift" }

func (m *EnergyDrift) Observe(t float64, central, b *physics.Body) {
	e := physics.SpecificEnergy(m.g, central, b)
	if m.samples == 0 {
		m.initial = e
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(e-m.initial) / math.Abs(m.initial)
		if drift > m.maxDrift {
			m.maxDrift = drift
		}
	}
}

func (m *EnergyDrift) Value() float64 { return m.maxDrift }

func (m *EnergyDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
