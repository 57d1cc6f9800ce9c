package app

import (
	"math/rand/v2"

	"lifelab/internal/core"
	"lifelab/internal/life"
	"lifelab/internal/monitor"
)

// Session owns the mutable state of one simulation run: the grid, the
// pattern monitor, the random source, and the generation counter. It replaces
// what an interactive front end would keep as globals. All methods must be
// called from a single goroutine; the session does no locking.
type Session struct {
	cfg Config

	grid       *life.Grid
	mon        *monitor.Monitor
	rng        *rand.Rand
	generation int

	lastHash   string
	noActivity int
}

// TickResult describes what happened during one generation.
type TickResult struct {
	Generation int
	Alive      int

	// Period is the detected cycle length, valid only when Detected.
	Period   int
	Detected bool

	// Perturbations is the number of targeted toggles applied to break a
	// detected cycle, zero when auto-perturbation is off or nothing was
	// detected.
	Perturbations int

	// Died reports that no cell survived the step.
	Died bool
	// Settled reports that the state hash has stopped changing, meaning a
	// still life or an empty board.
	Settled bool
}

// NewSession builds a session from the configuration. Invalid grid or
// monitor parameters surface as wrapped ErrInvalidConfig errors from the
// respective package.
func NewSession(cfg Config) (*Session, error) {
	grid, err := life.New(cfg.Rows, cfg.Cols, cfg.Toroidal)
	if err != nil {
		return nil, err
	}
	mon, err := monitor.New(cfg.Window, cfg.MinRepeats)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:  cfg,
		grid: grid,
		mon:  mon,
		rng:  core.NewRNG(cfg.Seed).Source(),
	}, nil
}

// Grid exposes the underlying grid for queries and direct inspection.
func (s *Session) Grid() *life.Grid { return s.grid }

// Generation returns the number of completed generations since the last
// discontinuity.
func (s *Session) Generation() int { return s.generation }

// discontinue resets everything that assumes a continuous generation
// sequence.
func (s *Session) discontinue() {
	s.mon.Reset()
	s.generation = 0
	s.lastHash = ""
	s.noActivity = 0
}

// Reseed randomizes the board at the configured density and discards monitor
// history.
func (s *Session) Reseed() {
	life.SeedRandom(s.grid, s.cfg.Density, s.rng)
	s.discontinue()
}

// Clear kills every cell and discards monitor history.
func (s *Session) Clear() {
	s.grid.Clear()
	s.discontinue()
}

// ToggleCell flips one cell, as a manual edit would, and discards monitor
// history.
func (s *Session) ToggleCell(r, c int) {
	s.grid.Toggle(r, c)
	s.discontinue()
}

// Resize replaces the grid with a new one of the given dimensions, keeping a
// centered copy of the old contents, and discards monitor history.
func (s *Session) Resize(rows, cols int) error {
	grid, err := s.grid.Resized(rows, cols)
	if err != nil {
		return err
	}
	s.grid = grid
	s.discontinue()
	return nil
}

// InjectNoise toggles the configured fraction of cells at random, returning
// the number of toggles. Activity tracking restarts; monitor history is kept,
// since noise is how a stuck board gets unstuck.
func (s *Session) InjectNoise() int {
	n := life.InjectNoise(s.grid, s.cfg.NoiseFraction, s.rng)
	s.lastHash = ""
	s.noActivity = 0
	return n
}

// perturbCount maps the configured rate to a number of perturbations,
// at least one.
func (s *Session) perturbCount() int {
	n := int(s.cfg.PerturbRate * 5)
	if n < 1 {
		n = 1
	}
	return n
}

// Tick runs one iteration of the driver loop: hash the current state, feed
// the hash to the monitor, break a detected cycle with targeted
// perturbations, then advance one generation.
func (s *Session) Tick() TickResult {
	res := TickResult{Generation: s.generation}

	h := s.grid.StateHash()
	if p, ok := s.mon.Observe(h); ok {
		res.Period = p
		res.Detected = true
		if s.cfg.AutoPerturb {
			res.Perturbations = s.perturbCount()
			for i := 0; i < res.Perturbations; i++ {
				life.PerturbOscillation(s.grid, s.cfg.PerturbRadius, s.rng)
			}
		}
	}

	if s.lastHash != "" && h == s.lastHash {
		s.noActivity++
	} else {
		s.noActivity = 0
	}
	s.lastHash = h

	s.grid.Step()
	s.generation++

	for range s.grid.AliveCells() {
		res.Alive++
	}
	res.Died = res.Alive == 0
	res.Settled = s.noActivity >= 2
	return res
}
