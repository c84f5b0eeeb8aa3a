// Package viz renders the simulation in the terminal: a braille-dot
// canvas driven by a bubbletea program, for machines without a
// display.
package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	canvasWidth  = 100
	canvasHeight = 28
	frameRate    = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// canvasRenderer adapts the braille canvas to the simulation's
// renderer contract. Colors are accepted and dropped: braille cells
// are monochrome.
type canvasRenderer struct {
	canvas *Canvas
	scale  float64 // dots per world unit
	cx, cy int     // dot-space origin
}

func newCanvasRenderer(maxOrbit float64) *canvasRenderer {
	c := NewCanvas(canvasWidth, canvasHeight)
	dots := canvasWidth * 2
	if canvasHeight*4 < dots {
		dots = canvasHeight * 4
	}
	return &canvasRenderer{
		canvas: c,
		scale:  0.45 * float64(dots) / maxOrbit,
		cx:     canvasWidth,      // half of width*2
		cy:     canvasHeight * 2, // half of height*4
	}
}

func (r *canvasRenderer) toDots(p physics.Vec2) (int, int) {
	return r.cx + int(p.X*r.scale), r.cy - int(p.Y*r.scale)
}

func (r *canvasRenderer) ClearFrame() {
	r.canvas.Clear()
}

func (r *canvasRenderer) DrawBody(b *physics.Body) {
	x, y := r.toDots(b.Pos)
	r.canvas.FillCircle(x, y, int(b.Radius*r.scale))
}

func (r *canvasRenderer) DrawTrail(points []physics.Vec2, _ color.RGBA) {
	px, py := r.toDots(points[0])
	for _, p := range points[1:] {
		x, y := r.toDots(p)
		r.canvas.Line(px, py, x, y)
		px, py = x, y
	}
}

func (r *canvasRenderer) Present() {}

// Model is the bubbletea program state for the live view.
type Model struct {
	sim      *sim.Simulation
	renderer *canvasRenderer
}

func NewModel(s *sim.Simulation) Model {
	return Model{
		sim:      s,
		renderer: newCanvasRenderer(s.MaxOrbitRadius()),
	}
}

// Run blocks in the terminal frame loop until the user quits.
func Run(s *sim.Simulation) error {
	_, err := tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.sim.Enqueue(sim.ToggleTrails)
		case " ":
			m.sim.Enqueue(sim.TogglePause)
		case "r":
			m.sim.Reset()
		}
	case TickMsg:
		m.sim.Frame()
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.sim.Render(m.renderer)

	var b strings.Builder
	b.WriteString(headerStyle.Render("orbitsim"))
	if !m.sim.Running() {
		b.WriteString("  " + pausedStyle.Render("PAUSED"))
	}
	b.WriteByte('\n')
	b.WriteString(m.renderer.canvas.String())

	b.WriteString(labelStyle.Render("t "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%8.1fs", m.sim.SimTime())))
	b.WriteString(labelStyle.Render("   steps "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", m.sim.Steps())))
	b.WriteString(labelStyle.Render("   trails "))
	if m.sim.TrailsEnabled() {
		b.WriteString(valueStyle.Render("on"))
	} else {
		b.WriteString(valueStyle.Render("off"))
	}
	b.WriteByte('\n')

	for _, body := range m.sim.Bodies {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", body.Name)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" r=%7.1f  v=%6.2f", body.Pos.Len(), body.Speed())))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("t: trails  space: pause  r: reset  q: quit"))
	return b.String()
}
