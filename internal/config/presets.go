package config

// Presets are ready-made systems selectable by name from the CLI.
var Presets = map[string]func() *Config{
	"default": DefaultConfig,

	// A tight, fast system: small orbits close to the stability floor
	// scale, high time multiplier.
	"compact": func() *Config {
		cfg := DefaultConfig()
		cfg.Name = "compact"
		cfg.TimeMultiplier = 40
		cfg.Bodies = []BodyConfig{
			{Name: "inner", Distance: 30, Angle: 0, Mass: 10, Radius: 3, Color: "#d0d0d0"},
			{Name: "mid", Distance: 55, Angle: 90, Mass: 20, Radius: 4, Color: "#e0a060"},
			{Name: "outer", Distance: 90, Angle: 200, Mass: 15, Radius: 3, Color: "#80a0e0"},
		}
		return cfg
	},

	// Widely spaced orbits; slow periods, long smooth trails.
	"sparse": func() *Config {
		cfg := DefaultConfig()
		cfg.Name = "sparse"
		cfg.TimeMultiplier = 80
		cfg.Bodies = []BodyConfig{
			{Name: "near", Distance: 150, Angle: 0, Mass: 60, Radius: 5, Color: "#c0c0c0"},
			{Name: "far", Distance: 400, Angle: 180, Mass: 120, Radius: 8, Color: "#9070c0"},
		}
		return cfg
	},

	// Single body on the reference orbit used throughout the tests:
	// r=200 around a 1.989e6 sun with the default G.
	"reference": func() *Config {
		cfg := DefaultConfig()
		cfg.Name = "reference"
		cfg.TimeMultiplier = 1
		cfg.Bodies = []BodyConfig{
			{Name: "probe", Distance: 200, Angle: 0, Mass: 1, Radius: 4, Color: "#ffffff"},
		}
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
