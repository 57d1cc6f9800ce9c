package life

import "math/rand/v2"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SeedRandom overwrites every cell, setting it alive with independent
// probability density (clamped to [0, 1]). Density 0 yields an all-dead
// board and density 1 an all-alive one regardless of the random stream.
func SeedRandom(g *Grid, density float64, rng *rand.Rand) {
	density = clamp01(density)
	for i := range g.cur {
		if rng.Float64() < density {
			g.cur[i] = 1
		} else {
			g.cur[i] = 0
		}
	}
}

// InjectNoise toggles max(1, floor(cells*fraction)) cells chosen uniformly at
// random with replacement, so the same cell may flip twice and cancel out.
// It returns the number of toggle operations performed, not the net number of
// cells changed.
func InjectNoise(g *Grid, fraction float64, rng *rand.Rand) int {
	flips := int(float64(g.rows*g.cols) * clamp01(fraction))
	if flips < 1 {
		flips = 1
	}
	for i := 0; i < flips; i++ {
		r := rng.IntN(g.rows)
		c := rng.IntN(g.cols)
		g.cur[r*g.cols+c] ^= 1
	}
	return flips
}

// PerturbOscillation nudges a repeating board by toggling one cell near a
// random alive cell: the anchor is drawn uniformly from the live cells and
// the target offset uniformly from [-radius, radius] in each axis. The offset
// always wraps toroidally, even on finite grids. A fully dead board gets one
// uniformly random toggle instead.
func PerturbOscillation(g *Grid, radius int, rng *rand.Rand) {
	if radius < 0 {
		radius = 0
	}
	var alive [][2]int
	for r, c := range g.AliveCells() {
		alive = append(alive, [2]int{r, c})
	}
	if len(alive) == 0 {
		g.Toggle(rng.IntN(g.rows), rng.IntN(g.cols))
		return
	}
	anchor := alive[rng.IntN(len(alive))]
	r := anchor[0] + rng.IntN(2*radius+1) - radius
	c := anchor[1] + rng.IntN(2*radius+1) - radius
	r, c = g.wrap(r, c)
	g.Toggle(r, c)
}
