// Package app owns the driver-side state of a simulation run: configuration
// and the session controller that ties the grid, the pattern monitor, and the
// perturbation utilities together.
package app

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents the tunables for a simulation run. Values come from
// LIFELAB_* environment variables first; command-line flags bound with Bind
// override them.
type Config struct {
	Rows     int  `env:"LIFELAB_ROWS" envDefault:"48"`
	Cols     int  `env:"LIFELAB_COLS" envDefault:"80"`
	Toroidal bool `env:"LIFELAB_TOROIDAL" envDefault:"true"`

	Seed    int64   `env:"LIFELAB_SEED" envDefault:"42"`
	Density float64 `env:"LIFELAB_DENSITY" envDefault:"0.15"`

	// NoiseFraction is the fraction of cells toggled by a noise
	// injection.
	NoiseFraction float64 `env:"LIFELAB_NOISE_FRACTION" envDefault:"0.02"`
	// PerturbRadius bounds the offset of a targeted perturbation around a
	// random alive cell.
	PerturbRadius int `env:"LIFELAB_PERTURB_RADIUS" envDefault:"2"`
	// PerturbRate scales how many perturbations fire when a cycle is
	// detected: max(1, rate*5).
	PerturbRate float64 `env:"LIFELAB_PERTURB_RATE" envDefault:"0.2"`
	// AutoPerturb enables breaking detected cycles automatically.
	AutoPerturb bool `env:"LIFELAB_AUTO_PERTURB" envDefault:"true"`

	Window     int `env:"LIFELAB_MONITOR_WINDOW" envDefault:"64"`
	MinRepeats int `env:"LIFELAB_MONITOR_MIN_REPEATS" envDefault:"3"`

	// Rate is the target generations per second; zero or negative runs
	// unpaced.
	Rate int `env:"LIFELAB_RATE" envDefault:"0"`
	// MaxGenerations stops the run after this many generations.
	MaxGenerations int `env:"LIFELAB_MAX_GENERATIONS" envDefault:"1000"`
}

// NewConfig returns a Config populated from the environment, falling back to
// the documented defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet so flags can
// override environment values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.BoolVar(&c.Toroidal, "toroidal", c.Toroidal, "wrap grid edges")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random state")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability when seeding")
	fs.Float64Var(&c.NoiseFraction, "noise", c.NoiseFraction, "fraction of cells toggled by a noise injection")
	fs.IntVar(&c.PerturbRadius, "radius", c.PerturbRadius, "perturbation offset radius")
	fs.Float64Var(&c.PerturbRate, "perturb-rate", c.PerturbRate, "perturbation aggressiveness in [0,1]")
	fs.BoolVar(&c.AutoPerturb, "auto-perturb", c.AutoPerturb, "break detected cycles automatically")
	fs.IntVar(&c.Window, "window", c.Window, "monitor hash history capacity")
	fs.IntVar(&c.MinRepeats, "min-repeats", c.MinRepeats, "repeats required to confirm a period")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second (0 = unpaced)")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "generations to run")
}
