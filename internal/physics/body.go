package physics

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector in simulation units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector; the zero vector maps to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Body is a point mass with a visual radius and color. Pos and Vel
// change every physics step; Mass, Radius and Color are fixed after
// creation.
type Body struct {
	Name   string
	Pos    Vec2
	Vel    Vec2
	Mass   float64
	Radius float64
	Color  color.RGBA
}

// NewCentral returns the attractor: pinned at the origin with zero
// velocity, never integrated.
func NewCentral(name string, mass, radius float64, col color.RGBA) *Body {
	return &Body{
		Name:   name,
		Mass:   mass,
		Radius: radius,
		Color:  col,
	}
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}
