package sim

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/trail"
)

// Command is an input event applied to the simulation at the start of
// the next frame, before stepping and rendering. Input collaborators
// never mutate simulation state directly; they enqueue commands.
type Command int

const (
	// ToggleTrails flips trail visibility for every body at once. It
	// never clears recorded history: disabling only suppresses
	// rendering.
	ToggleTrails Command = iota

	// TogglePause stops and resumes physics stepping. Wall time
	// elapsed while paused is discarded, not accumulated.
	TogglePause
)

// Renderer is the drawing surface a frame is handed to. Implementations
// live at the edges (raylib window, terminal canvas); the simulation
// only dictates the order: clear, trails, bodies, present.
type Renderer interface {
	ClearFrame()
	DrawBody(b *physics.Body)
	DrawTrail(points []physics.Vec2, col color.RGBA)
	Present()
}

// Observer is notified after every physics step. Used by drift metrics
// and headless diagnostics.
type Observer interface {
	OnStep(t float64, central *physics.Body, bodies []*physics.Body)
}

// Simulation is the complete mutable state of one run: the attractor,
// the orbiting bodies, their trails and the stepping machinery. It is
// not safe for concurrent use; all access happens on the frame loop's
// goroutine.
type Simulation struct {
	Central *physics.Body
	Bodies  []*physics.Body

	trails         []*trail.Trail
	stepper        *physics.SemiImplicitEuler
	sched          *Scheduler
	clock          Clock
	timeMultiplier float64

	trailsEnabled bool
	running       bool
	simTime       float64
	steps         uint64

	pending   []Command
	observers []Observer
	initial   []physics.Body
}

// New builds a simulation from a validated configuration. Each body is
// placed at its configured distance and angle and given the tangential
// circular-orbit velocity; a body configured on top of the attractor
// fails the whole setup.
func New(cfg *config.Config, clock Clock) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	central := physics.NewCentral(cfg.Central.Name, cfg.Central.Mass, cfg.Central.Radius,
		config.ParseColor(cfg.Central.Color))

	stepper := physics.NewSemiImplicitEuler(cfg.G)
	stepper.MinDistSq = cfg.MinDistSq

	s := &Simulation{
		Central:        central,
		stepper:        stepper,
		sched:          NewScheduler(cfg.FixedDt, cfg.MaxFrameTime),
		clock:          clock,
		timeMultiplier: cfg.TimeMultiplier,
		trailsEnabled:  true,
		running:        true,
	}

	for _, bc := range cfg.Bodies {
		angle := bc.Angle * math.Pi / 180
		pos := physics.Vec2{
			X: bc.Distance * math.Cos(angle),
			Y: bc.Distance * math.Sin(angle),
		}
		vel, err := physics.OrbitalVelocity(cfg.G, central, pos)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}

		b := &physics.Body{
			Name:   bc.Name,
			Pos:    pos,
			Vel:    vel,
			Mass:   bc.Mass,
			Radius: bc.Radius,
			Color:  config.ParseColor(bc.Color),
		}
		s.Bodies = append(s.Bodies, b)
		s.trails = append(s.trails, trail.New())
		s.initial = append(s.initial, *b)
	}

	return s, nil
}

func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Enqueue records a command for application at the start of the next
// frame. Safe to call from input handlers running on the frame loop.
func (s *Simulation) Enqueue(c Command) {
	s.pending = append(s.pending, c)
}

// Frame runs one display frame: apply queued commands, measure elapsed
// wall time, drain it in fixed steps, and return how many steps ran.
// After Frame returns, the leftover accumulated time is below one
// fixed step and the state is ready to render.
func (s *Simulation) Frame() int {
	s.applyPending()

	steps := s.sched.Advance(s.clock.Now())
	if !s.running {
		return 0
	}
	for i := 0; i < steps; i++ {
		s.step()
	}
	return steps
}

// RunSteps advances exactly n fixed steps without consulting the wall
// clock. Headless runs and tests use this to get reproducible
// trajectories.
func (s *Simulation) RunSteps(n int) {
	for i := 0; i < n; i++ {
		s.step()
	}
}

func (s *Simulation) step() {
	dt := s.sched.FixedDt * s.timeMultiplier
	for i, b := range s.Bodies {
		s.stepper.Step(b, s.Central, dt)
		s.trails[i].Append(b.Pos)
	}
	s.simTime += dt
	s.steps++

	for _, o := range s.observers {
		o.OnStep(s.simTime, s.Central, s.Bodies)
	}
}

func (s *Simulation) applyPending() {
	for _, c := range s.pending {
		switch c {
		case ToggleTrails:
			s.trailsEnabled = !s.trailsEnabled
		case TogglePause:
			s.running = !s.running
		}
	}
	s.pending = s.pending[:0]
}

// Render hands the current state to a renderer: trails first (only
// when enabled and holding at least two points), then the attractor
// and bodies on top.
func (s *Simulation) Render(r Renderer) {
	r.ClearFrame()
	if s.trailsEnabled {
		for i, t := range s.trails {
			if t.Len() >= 2 {
				r.DrawTrail(t.Points(), s.Bodies[i].Color)
			}
		}
	}
	r.DrawBody(s.Central)
	for _, b := range s.Bodies {
		r.DrawBody(b)
	}
	r.Present()
}

// Reset restores every body to its initial position and velocity,
// clears trails and restarts the clock base. The trail visibility
// preference survives a reset.
func (s *Simulation) Reset() {
	for i := range s.Bodies {
		*s.Bodies[i] = s.initial[i]
	}
	for _, t := range s.trails {
		t.Reset()
	}
	s.sched.Reset()
	s.simTime = 0
	s.steps = 0
	s.running = true
}

func (s *Simulation) TrailsEnabled() bool { return s.trailsEnabled }

func (s *Simulation) Running() bool { return s.running }

// SimTime returns total simulated seconds, including the time
// multiplier.
func (s *Simulation) SimTime() float64 { return s.simTime }

// Steps returns the number of physics steps taken since start/reset.
func (s *Simulation) Steps() uint64 { return s.steps }

// Trail returns body i's recorded path.
func (s *Simulation) Trail(i int) *trail.Trail { return s.trails[i] }

// FixedDt returns the configured physics step size in wall seconds.
func (s *Simulation) FixedDt() float64 { return s.sched.FixedDt }

// EffectiveDt returns the simulated time advanced by one physics step.
func (s *Simulation) EffectiveDt() float64 { return s.sched.FixedDt * s.timeMultiplier }

// Accumulated exposes the scheduler's leftover time, for HUDs and
// tests.
func (s *Simulation) Accumulated() float64 { return s.sched.Accumulated() }

// MaxOrbitRadius returns the largest initial orbital distance, used by
// renderers to fit the whole system on screen.
func (s *Simulation) MaxOrbitRadius() float64 {
	max := s.Central.Radius
	for _, b := range s.initial {
		if r := b.Pos.Len(); r > max {
			max = r
		}
	}
	return max
}
