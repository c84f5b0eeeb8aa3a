package physics

import (
	"image/color"
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := b.Scale(0.5)
	if scaled.X != 1.5 || scaled.Y != -2 {
		t.Errorf("Scale failed: got %v", scaled)
	}
}

func TestVec2_Len(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5.0},
		{Vec2{1, 0}, 1.0},
		{Vec2{0, 0}, 0.0},
		{Vec2{-3, -4}, 5.0},
	}

	for _, tt := range tests {
		if got := tt.v.Len(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Len(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got := tt.v.LenSq(); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("LenSq(%v) = %v, want %v", tt.v, got, tt.expected*tt.expected)
		}
	}
}

func TestVec2_Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.Len()-1.0) > 1e-12 {
		t.Errorf("Normalize produced non-unit vector: %v", n)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec2_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		valid bool
	}{
		{"zero", Vec2{}, true},
		{"normal", Vec2{1.5, -2.5}, true},
		{"NaN", Vec2{math.NaN(), 0}, false},
		{"+Inf", Vec2{0, math.Inf(1)}, false},
		{"-Inf", Vec2{math.Inf(-1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestNewCentral(t *testing.T) {
	c := NewCentral("sun", 1.989e6, 16, color.RGBA{245, 215, 110, 255})

	if c.Pos != (Vec2{}) || c.Vel != (Vec2{}) {
		t.Errorf("central body not pinned at origin: pos=%v vel=%v", c.Pos, c.Vel)
	}
	if c.Mass != 1.989e6 {
		t.Errorf("mass = %v, want 1.989e6", c.Mass)
	}
}
