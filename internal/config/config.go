package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultG              = 6.67430e-3
	DefaultFixedDt        = 0.005
	DefaultMaxFrameTime   = 0.1
	DefaultTimeMultiplier = 20.0
	DefaultMinDistSq      = 1.0
)

// Config describes a complete simulation setup: the integration
// constants, the central mass and every orbiting body. Bodies are
// placed at a radial distance and angle from the attractor; their
// initial speed is always derived from the circular-orbit solution,
// so no velocity appears here.
type Config struct {
	Name           string        `yaml:"name"`
	G              float64       `yaml:"g"`
	FixedDt        float64       `yaml:"fixed_dt"`
	MaxFrameTime   float64       `yaml:"max_frame_time"`
	TimeMultiplier float64       `yaml:"time_multiplier"`
	MinDistSq      float64       `yaml:"min_dist_sq"`
	Central        CentralConfig `yaml:"central"`
	Bodies         []BodyConfig  `yaml:"bodies"`
}

type CentralConfig struct {
	Name   string  `yaml:"name"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

type BodyConfig struct {
	Name     string  `yaml:"name"`
	Distance float64 `yaml:"distance"`
	Angle    float64 `yaml:"angle"` // degrees, counter-clockwise from +x
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	Color    string  `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:           "default",
		G:              DefaultG,
		FixedDt:        DefaultFixedDt,
		MaxFrameTime:   DefaultMaxFrameTime,
		TimeMultiplier: DefaultTimeMultiplier,
		MinDistSq:      DefaultMinDistSq,
		Central: CentralConfig{
			Name:   "sun",
			Mass:   1.989e6,
			Radius: 16,
			Color:  "#f5d76e",
		},
		Bodies: []BodyConfig{
			{Name: "ash", Distance: 80, Angle: 0, Mass: 30, Radius: 4, Color: "#b0b0b0"},
			{Name: "ember", Distance: 140, Angle: 120, Mass: 80, Radius: 6, Color: "#e08050"},
			{Name: "haven", Distance: 200, Angle: 240, Mass: 100, Radius: 7, Color: "#5090d0"},
			{Name: "drift", Distance: 280, Angle: 60, Mass: 50, Radius: 5, Color: "#70c090"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the simulation cannot start from.
// Validation runs once at setup; failures are fatal, never retried.
func (c *Config) Validate() error {
	if c.FixedDt <= 0 {
		return fmt.Errorf("fixed_dt must be positive, got %g", c.FixedDt)
	}
	if c.MaxFrameTime < c.FixedDt {
		return fmt.Errorf("max_frame_time %g is below fixed_dt %g", c.MaxFrameTime, c.FixedDt)
	}
	if c.TimeMultiplier <= 0 {
		return fmt.Errorf("time_multiplier must be positive, got %g", c.TimeMultiplier)
	}
	if c.MinDistSq <= 0 {
		return fmt.Errorf("min_dist_sq must be positive, got %g", c.MinDistSq)
	}
	if c.Central.Mass <= 0 {
		return fmt.Errorf("central mass must be positive, got %g", c.Central.Mass)
	}
	if c.Central.Radius <= 0 {
		return fmt.Errorf("central radius must be positive, got %g", c.Central.Radius)
	}
	for i, b := range c.Bodies {
		if b.Distance <= 0 {
			return fmt.Errorf("body %d (%s): distance must be positive, got %g", i, b.Name, b.Distance)
		}
		if b.Mass <= 0 {
			return fmt.Errorf("body %d (%s): mass must be positive, got %g", i, b.Name, b.Mass)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("body %d (%s): radius must be positive, got %g", i, b.Name, b.Radius)
		}
	}
	return nil
}

// ParseColor converts a "#rrggbb" hex string to an opaque RGBA color.
// Malformed strings fall back to a neutral gray rather than failing:
// body colors are cosmetic, not simulation state.
func ParseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 200, 255}
}
