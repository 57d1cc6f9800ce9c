// Package monitor detects repetition in a stream of generation hashes so a
// driver can tell when a simulation has settled into a static or periodic
// pattern. Detection treats equal hashes as equal states, which is correct
// only up to hash collisions; with a 256-bit digest that risk is accepted.
package monitor

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a construction-time precondition violation.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// DefaultWindow is the default hash history capacity.
	DefaultWindow = 64
	// DefaultMinRepeats is the default number of confirmations required
	// before a period is reported.
	DefaultMinRepeats = 3

	// maxPeriod caps the candidate period search. Longer cycles go
	// undetected on purpose to bound the per-observation cost.
	maxPeriod = 20

	// minHistory is the number of observations required before any
	// verdict; fewer hashes are insufficient evidence.
	minHistory = 6
)

// Monitor keeps a sliding window of recent state hashes and reports the
// smallest period that repeats often enough to be considered legitimate.
//
// This is a bounded-cost heuristic, not exact cycle detection: periods above
// 20 and cycles without enough confirmed repeats yet are missed, and that is
// acceptable.
type Monitor struct {
	window     int
	minRepeats int
	hashes     []string
}

// New returns a Monitor with the given history capacity and repeat threshold.
func New(window, minRepeats int) (*Monitor, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: window %d must be positive", ErrInvalidConfig, window)
	}
	if minRepeats < 1 {
		return nil, fmt.Errorf("%w: min repeats %d must be positive", ErrInvalidConfig, minRepeats)
	}
	return &Monitor{window: window, minRepeats: minRepeats}, nil
}

// Default returns a Monitor with the standard window and repeat threshold.
func Default() *Monitor {
	m, _ := New(DefaultWindow, DefaultMinRepeats)
	return m
}

// Len returns the number of hashes currently held.
func (m *Monitor) Len() int { return len(m.hashes) }

// Reset discards all history. Call it whenever the generation sequence is
// discontinuous (reseed, clear, resize, manual edit); hashes from a different
// sequence are meaningless.
func (m *Monitor) Reset() {
	m.hashes = m.hashes[:0]
}

// Observe records h and reports a detected period, if any. The history is
// bounded: once the window is full the oldest hash is evicted first.
//
// Candidate periods are tried ascending from 1 (a still life) up to
// min(len/2, 20), walking backward from the newest entry and comparing
// entries one period apart; the first period that accumulates at least the
// configured number of consecutive confirmations is returned.
func (m *Monitor) Observe(h string) (period int, ok bool) {
	if len(m.hashes) == m.window {
		copy(m.hashes, m.hashes[1:])
		m.hashes[len(m.hashes)-1] = h
	} else {
		m.hashes = append(m.hashes, h)
	}

	n := len(m.hashes)
	if n < minHistory {
		return 0, false
	}
	maxP := n / 2
	if maxP > maxPeriod {
		maxP = maxPeriod
	}
	for p := 1; p <= maxP; p++ {
		repeats := 1
		for idx := n - 1; idx-p >= 0; idx -= p {
			if m.hashes[idx] != m.hashes[idx-p] {
				break
			}
			repeats++
			if repeats >= m.minRepeats {
				return p, true
			}
		}
	}
	return 0, false
}
