package sim

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/physics"
)

// recordRenderer captures the draw calls of one frame.
type recordRenderer struct {
	cleared   int
	presented int
	bodies    []*physics.Body
	trails    [][]physics.Vec2
}

func (r *recordRenderer) ClearFrame()                { r.cleared++ }
func (r *recordRenderer) Present()                   { r.presented++ }
func (r *recordRenderer) DrawBody(b *physics.Body)   { r.bodies = append(r.bodies, b) }
func (r *recordRenderer) DrawTrail(p []physics.Vec2, _ color.RGBA) {
	r.trails = append(r.trails, p)
}

func newTestSim(t *testing.T, clock Clock) *Simulation {
	t.Helper()
	s, err := New(config.DefaultConfig(), clock)
	if err != nil {
		t.Fatalf("sim setup: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bodies[0].Distance = 0

	if _, err := New(cfg, &FakeClock{}); err == nil {
		t.Error("expected setup error for body at attractor")
	}
}

func TestFrameDrainsFixedSteps(t *testing.T) {
	clock := &FakeClock{}
	s := newTestSim(t, clock)

	if steps := s.Frame(); steps != 0 {
		t.Fatalf("first frame ran %d steps, want 0", steps)
	}

	clock.Advance(2.5 * s.FixedDt())
	if steps := s.Frame(); steps != 2 {
		t.Errorf("2.5*dt frame ran %d steps, want 2", steps)
	}
	if acc := s.Accumulated(); acc < 0 || acc >= s.FixedDt() {
		t.Errorf("leftover %v outside [0, dt)", acc)
	}
}

func TestStepAppendsTrailPerBody(t *testing.T) {
	s := newTestSim(t, &FakeClock{})

	const k = 37
	s.RunSteps(k)

	for i := range s.Bodies {
		if got := s.Trail(i).Len(); got != k {
			t.Errorf("body %d trail length %d after %d steps", i, got, k)
		}
	}
	if s.Steps() != k {
		t.Errorf("step counter %d, want %d", s.Steps(), k)
	}
}

func TestStepUsesTimeMultiplier(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TimeMultiplier = 4
	s, err := New(cfg, &FakeClock{})
	if err != nil {
		t.Fatalf("sim setup: %v", err)
	}

	s.RunSteps(10)
	want := 10 * cfg.FixedDt * 4
	if math.Abs(s.SimTime()-want) > 1e-12 {
		t.Errorf("simulated time %v, want %v", s.SimTime(), want)
	}
}

func TestToggleTrailsPreservesHistory(t *testing.T) {
	s := newTestSim(t, &FakeClock{})
	s.RunSteps(25)

	before := make([]physics.Vec2, s.Trail(0).Len())
	copy(before, s.Trail(0).Points())

	s.Enqueue(ToggleTrails)
	s.Frame()
	if s.TrailsEnabled() {
		t.Fatal("trails still enabled after toggle")
	}
	if s.Trail(0).Len() != len(before) {
		t.Errorf("toggle off changed history length: %d -> %d", len(before), s.Trail(0).Len())
	}

	s.Enqueue(ToggleTrails)
	s.Frame()
	if !s.TrailsEnabled() {
		t.Fatal("trails still disabled after second toggle")
	}

	after := s.Trail(0).Points()
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("history point %d changed across toggles", i)
		}
	}
}

func TestRenderSkipsShortAndHiddenTrails(t *testing.T) {
	s := newTestSim(t, &FakeClock{})

	// 0 and 1 recorded points: trails are enabled but must not be
	// drawn.
	r := &recordRenderer{}
	s.Render(r)
	if len(r.trails) != 0 {
		t.Errorf("empty trails drawn: %d", len(r.trails))
	}

	s.RunSteps(1)
	r = &recordRenderer{}
	s.Render(r)
	if len(r.trails) != 0 {
		t.Errorf("single-point trails drawn: %d", len(r.trails))
	}

	s.RunSteps(5)
	r = &recordRenderer{}
	s.Render(r)
	if len(r.trails) != len(s.Bodies) {
		t.Errorf("drew %d trails, want %d", len(r.trails), len(s.Bodies))
	}

	s.Enqueue(ToggleTrails)
	s.Frame()
	r = &recordRenderer{}
	s.Render(r)
	if len(r.trails) != 0 {
		t.Errorf("hidden trails drawn: %d", len(r.trails))
	}
}

func TestRenderDrawsAllBodiesOnce(t *testing.T) {
	s := newTestSim(t, &FakeClock{})

	r := &recordRenderer{}
	s.Render(r)

	if r.cleared != 1 || r.presented != 1 {
		t.Errorf("clear/present = %d/%d, want 1/1", r.cleared, r.presented)
	}
	// Attractor plus every orbiting body.
	if len(r.bodies) != len(s.Bodies)+1 {
		t.Errorf("drew %d bodies, want %d", len(r.bodies), len(s.Bodies)+1)
	}
	if r.bodies[0] != s.Central {
		t.Error("central body not drawn first")
	}
}

func TestPauseDiscardsWallTime(t *testing.T) {
	clock := &FakeClock{}
	s := newTestSim(t, clock)
	s.Frame()

	s.Enqueue(TogglePause)
	clock.Advance(1.0)
	if steps := s.Frame(); steps != 0 {
		t.Errorf("paused frame ran %d steps", steps)
	}

	s.Enqueue(TogglePause)
	clock.Advance(0.5 * s.FixedDt())
	if steps := s.Frame(); steps != 0 {
		t.Errorf("resume frame ran %d steps before a full dt elapsed", steps)
	}
	if !s.Running() {
		t.Error("simulation not running after second toggle")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := newTestSim(t, &FakeClock{})

	start := make([]physics.Vec2, len(s.Bodies))
	for i, b := range s.Bodies {
		start[i] = b.Pos
	}

	s.RunSteps(500)
	s.Reset()

	for i, b := range s.Bodies {
		if b.Pos != start[i] {
			t.Errorf("body %d at %v after reset, want %v", i, b.Pos, start[i])
		}
		if s.Trail(i).Len() != 0 {
			t.Errorf("body %d trail survived reset", i)
		}
	}
	if s.SimTime() != 0 || s.Steps() != 0 {
		t.Errorf("counters survived reset: t=%v steps=%d", s.SimTime(), s.Steps())
	}
}

type countObserver struct {
	calls int
	last  float64
}

func (o *countObserver) OnStep(t float64, _ *physics.Body, _ []*physics.Body) {
	o.calls++
	o.last = t
}

func TestObserversSeeEveryStep(t *testing.T) {
	s := newTestSim(t, &FakeClock{})
	obs := &countObserver{}
	s.AddObserver(obs)

	s.RunSteps(12)
	if obs.calls != 12 {
		t.Errorf("observer saw %d steps, want 12", obs.calls)
	}
	if math.Abs(obs.last-s.SimTime()) > 1e-12 {
		t.Errorf("observer time %v, sim time %v", obs.last, s.SimTime())
	}
}
