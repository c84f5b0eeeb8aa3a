package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Long-run stability of the full simulation, driven through the same
// path the frontends use.
var _ = Describe("orbital stability", func() {
	var (
		s     *sim.Simulation
		probe *physics.Body
		start physics.Vec2
	)

	BeforeEach(func() {
		cfg := config.GetPreset("reference")
		Expect(cfg).NotTo(BeNil())

		var err error
		s, err = sim.New(cfg, &sim.FakeClock{})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Bodies).To(HaveLen(1))

		probe = s.Bodies[0]
		start = probe.Pos
	})

	periodSteps := func() int {
		period := 2 * math.Pi * start.Len() / probe.Vel.Len()
		return int(period / s.EffectiveDt())
	}

	It("closes the orbit after one full period", func() {
		s.RunSteps(periodSteps())

		miss := probe.Pos.Sub(start).Len()
		Expect(miss).To(BeNumerically("<", 0.01*start.Len()),
			"orbit ended %.3f units from its start", miss)
	})

	It("keeps the orbital radius in a narrow band", func() {
		r0 := start.Len()
		steps := periodSteps()

		for i := 0; i < steps; i++ {
			s.RunSteps(1)
			r := probe.Pos.Len()
			Expect(math.Abs(r-r0) / r0).To(BeNumerically("<", 0.01))
		}
	})

	It("conserves specific angular momentum to roundoff", func() {
		initial := physics.SpecificAngularMomentum(s.Central, probe)

		s.RunSteps(3 * periodSteps())

		final := physics.SpecificAngularMomentum(s.Central, probe)
		Expect(math.Abs(final-initial) / math.Abs(initial)).To(BeNumerically("<", 1e-9))
	})

	It("bounds energy drift over many periods", func() {
		g := 6.67430e-3
		initial := physics.SpecificEnergy(g, s.Central, probe)
		steps := 3 * periodSteps()

		maxDrift := 0.0
		for i := 0; i < steps; i++ {
			s.RunSteps(1)
			drift := math.Abs(physics.SpecificEnergy(g, s.Central, probe)-initial) / math.Abs(initial)
			if drift > maxDrift {
				maxDrift = drift
			}
		}

		// Bounded oscillation, not growth: three periods must look no
		// worse than one.
		Expect(maxDrift).To(BeNumerically("<", 0.01))
	})
})
