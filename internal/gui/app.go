// Package gui is the raylib window frontend: it owns the event loop,
// the wall clock and the pixel projection, and hands each frame's
// state to the screen through the simulation's renderer contract.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var (
	colBg      = rl.NewColor(10, 10, 14, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colBright  = rl.NewColor(255, 255, 255, 255)
)

// ErrWindowInit reports a failed window or GL context setup. It is
// fatal: no simulation state exists yet when it can occur.
var ErrWindowInit = errors.New("gui: window initialization failed")

// Clock reads raylib's monotonic timer. The windowing layer owns the
// wall clock; the simulation only consumes it.
type Clock struct{}

func (Clock) Now() float64 { return rl.GetTime() }

type App struct {
	sim    *sim.Simulation
	offset rl.Vector2
	scale  float32
	quit   bool
}

// Run opens the window and blocks in the frame loop until the window
// closes or Q is pressed.
func Run(s *sim.Simulation) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "orbitsim")
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := &App{sim: s}
	app.layout()

	for !rl.WindowShouldClose() && !app.quit {
		app.handleInput()
		app.sim.Frame()
		app.draw()
	}
	return nil
}

// layout recomputes the projection so the widest orbit fits the
// current window with a margin. Called at startup and after every
// resize; simulation state is untouched.
func (a *App) layout() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	a.offset = rl.NewVector2(w/2, h/2)

	min := w
	if h < min {
		min = h
	}
	a.scale = 0.45 * min / float32(a.sim.MaxOrbitRadius())
}

func (a *App) handleInput() {
	if rl.IsWindowResized() {
		a.layout()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.sim.Enqueue(sim.ToggleTrails)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.sim.Enqueue(sim.TogglePause)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sim.Reset()
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	a.sim.Render(a)
	a.drawHUD()
	rl.EndDrawing()
}

// toScreen maps world coordinates to pixels, +y up.
func (a *App) toScreen(p physics.Vec2) rl.Vector2 {
	return rl.NewVector2(
		a.offset.X+float32(p.X)*a.scale,
		a.offset.Y-float32(p.Y)*a.scale,
	)
}

// ClearFrame, DrawBody, DrawTrail and Present implement sim.Renderer.

func (a *App) ClearFrame() {
	rl.ClearBackground(colBg)
}

func (a *App) DrawBody(b *physics.Body) {
	radius := float32(b.Radius) * a.scale
	if radius < 2 {
		radius = 2
	}
	rl.DrawCircleV(a.toScreen(b.Pos), radius, rl.NewColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A))
}

func (a *App) DrawTrail(points []physics.Vec2, col color.RGBA) {
	pts := make([]rl.Vector2, len(points))
	for i, p := range points {
		pts[i] = a.toScreen(p)
	}
	rl.DrawLineStrip(pts, rl.NewColor(col.R, col.G, col.B, 160))
}

// Present is a no-op: raylib presents on EndDrawing, and frame
// bracketing belongs to the loop so the HUD can draw over the scene.
func (a *App) Present() {}

func (a *App) drawHUD() {
	rl.DrawText("orbitsim", 30, 24, 24, colBright)

	status := "RUNNING"
	col := colBright
	if !a.sim.Running() {
		status = "PAUSED"
		col = colTextDim
	}
	rl.DrawText(status, int32(rl.GetScreenWidth())-130, 28, 16, col)

	trails := "TRAILS ON"
	if !a.sim.TrailsEnabled() {
		trails = "TRAILS OFF"
	}
	rl.DrawText(trails, 30, 56, 14, colText)
	rl.DrawText(fmt.Sprintf("t=%.1fs  steps=%d", a.sim.SimTime(), a.sim.Steps()), 30, 76, 14, colText)

	rl.DrawText("[T] TRAILS  [SPACE] PAUSE  [R] RESET  [Q] QUIT",
		30, int32(rl.GetScreenHeight())-32, 14, colTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()),
		int32(rl.GetScreenWidth())-90, int32(rl.GetScreenHeight())-32, 14, colTextDim)
}
