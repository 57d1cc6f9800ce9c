package core

import "time"

// FixedStep helps run simulation updates at a steady generations-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(gps int) *FixedStep {
	if gps <= 0 {
		gps = 60
	}
	fs := &FixedStep{}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 60
	}
	f.step = time.Second / time.Duration(gps)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
