package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/gui"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dt         float64
	speed      float64
	duration   float64
	benchSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "real-time central-gravity orbital sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			s, err := sim.New(cfg, gui.Clock{})
			if err != nil {
				return err
			}
			return gui.Run(s)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "system config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset system")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultFixedDt, "physics timestep (wall seconds)")
	rootCmd.PersistentFlags().Float64Var(&speed, "speed", config.DefaultTimeMultiplier, "simulated seconds per wall second of stepping")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			s, err := sim.New(cfg, sim.NewClock())
			if err != nil {
				return err
			}
			return viz.Run(s)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report conservation diagnostics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 600.0, "simulated duration (seconds)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure raw stepping throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 1_000_000, "number of physics steps")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset systems",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers the three configuration sources: preset, then
// config file, then explicitly changed flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.FixedDt = dt
	}
	if cmd.Flags().Changed("speed") {
		cfg.TimeMultiplier = speed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg, sim.NewClock())
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder(cfg.G, s.Bodies)
	s.AddObserver(rec)

	steps := int(duration / s.EffectiveDt())
	if steps < 1 {
		return fmt.Errorf("duration %.3fs is below one step (%.3fs)", duration, s.EffectiveDt())
	}

	fmt.Printf("simulating %q: %d bodies, %d steps of %.3gs\n",
		cfg.Name, len(s.Bodies), steps, s.EffectiveDt())

	start := time.Now()
	s.RunSteps(steps)
	fmt.Printf("completed in %v\n\n", time.Since(start))

	for _, report := range rec.Reports() {
		fmt.Printf("%s:\n", report.Name)

		names := make([]string, 0, len(report.Metrics))
		for name := range report.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s: %.3e\n", name, report.Metrics[name])
		}

		graph := asciigraph.Plot(downsample(report.Radius, 320),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: orbital radius over %d steps", report.Name, steps)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg, sim.NewClock())
	if err != nil {
		return err
	}

	fmt.Printf("stepping %d bodies for %d steps...\n", len(s.Bodies), benchSteps)
	start := time.Now()
	s.RunSteps(benchSteps)
	elapsed := time.Since(start)

	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("throughput: %.0f steps/sec\n", float64(benchSteps)/elapsed.Seconds())
	return nil
}

// downsample thins a series to at most max points so plots stay
// readable for long runs.
func downsample(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}
	out := make([]float64, max)
	for i := range out {
		out[i] = data[i*len(data)/max]
	}
	return out
}
