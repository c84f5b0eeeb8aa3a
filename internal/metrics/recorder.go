package metrics

import "github.com/san-kum/orbitsim/internal/physics"

// BodyReport is the reduced diagnostics for one body after a run.
type BodyReport struct {
	Name    string
	Metrics map[string]float64

	// Radius and AngularMomentum are per-step series for plotting.
	Radius          []float64
	AngularMomentum []float64
}

// Recorder implements the simulation's observer hook: it feeds every
// step into a set of drift metrics per body and keeps the series the
// plot output needs. Intended for headless runs; interactive frontends
// don't pay for it.
type Recorder struct {
	g       float64
	metrics [][]Metric
	reports []BodyReport
}

func NewRecorder(g float64, bodies []*physics.Body) *Recorder {
	r := &Recorder{g: g}
	for _, b := range bodies {
		r.metrics = append(r.metrics, []Metric{
			NewAngularMomentumDrift(),
			NewEnergyDrift(g),
		})
		r.reports = append(r.reports, BodyReport{
			Name:    b.Name,
			Metrics: make(map[string]float64),
		})
	}
	return r
}

// OnStep satisfies the sim.Observer contract.
func (r *Recorder) OnStep(t float64, central *physics.Body, bodies []*physics.Body) {
	for i, b := range bodies {
		for _, m := range r.metrics[i] {
			m.Observe(t, central, b)
		}
		r.reports[i].Radius = append(r.reports[i].Radius, b.Pos.Sub(central.Pos).Len())
		r.reports[i].AngularMomentum = append(r.reports[i].AngularMomentum,
			physics.SpecificAngularMomentum(central, b))
	}
}

// Reports finalizes and returns per-body diagnostics.
func (r *Recorder) Reports() []BodyReport {
	for i := range r.reports {
		for _, m := range r.metrics[i] {
			r.reports[i].Metrics[m.Name()] = m.Value()
		}
	}
	return r.reports
}
