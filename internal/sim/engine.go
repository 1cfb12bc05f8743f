package sim

import (
	"math"
	"runtime"
	"sync"
)

// Step advances the world by exactly one tick.
//
// The tick runs as two strictly separate passes. Pass 1 computes every
// particle's accumulated displacement from the positions as they were at the
// start of the tick; pass 2 applies the displacements and wraps. Fusing the
// passes would let later particles see already-moved earlier particles
// within the same tick, so they must never be interleaved. Pass 1 is
// parallelized across particles for large populations: each particle's sum
// is read-only over the position snapshot and lands in its own scratch slot,
// and the inner loop order is fixed, so the result is identical to the
// serial pass.
func (w *World) Step() {
	w.accumulate()
	w.integrate()
	w.tick++
}

// minParallelPopulation is the population below which the goroutine fan-out
// costs more than the pass itself.
const minParallelPopulation = 256

// accumulate is pass 1: fill scratchX/scratchY with per-particle net
// displacements.
func (w *World) accumulate() {
	n := len(w.particles)
	if n < minParallelPopulation {
		for i := 0; i < n; i++ {
			w.scratchX[i], w.scratchY[i] = w.forceOn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				w.scratchX[i], w.scratchY[i] = w.forceOn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// forceOn sums the displacement contributions of every other particle on
// particle i.
//
// For each pair the shortest wrap-aware delta is taken per axis, then the
// signed kind coefficient scales an inverse-cube falloff: c*base/r^2 gives
// the magnitude, a further /r projects it onto the unit direction. Attracting
// pairs closer than the cutoff are skipped so they cannot collapse onto each
// other. Coincident non-attracting pairs have no defined direction and are
// skipped as well; that policy is the only guard the divide needs.
func (w *World) forceOn(i int) (float64, float64) {
	p := w.particles[i]
	var fx, fy float64
	for j := range w.particles {
		if j == i {
			continue
		}
		q := w.particles[j]
		dx := shortestDelta(p.X-q.X, w.cfg.Width)
		dy := shortestDelta(p.Y-q.Y, w.cfg.Height)
		rsq := dx*dx + dy*dy

		c := w.cfg.Matrix.At(p.Kind, q.Kind)
		if c < 0 && rsq < w.cfg.MinDistSq {
			continue
		}
		if rsq == 0 {
			continue
		}
		f := c * w.cfg.BaseCoeff / rsq / math.Sqrt(rsq)
		fx += f * dx
		fy += f * dy
	}
	return fx, fy
}

// integrate is pass 2: apply the accumulated displacements and wrap each
// axis back into [0, size). A single wrap suffices because the force
// constants bound a tick's displacement well below one domain width.
func (w *World) integrate() {
	for i := range w.particles {
		p := &w.particles[i]
		p.X = wrap(p.X+w.scratchX[i], w.cfg.Width)
		p.Y = wrap(p.Y+w.scratchY[i], w.cfg.Height)
		w.lastStep[i] = math.Hypot(w.scratchX[i], w.scratchY[i])
	}
}

// shortestDelta picks the shortest of the three wrap candidates
// {d, d+size, d-size} for one axis. Strict comparisons keep the earliest
// candidate on an exact tie, so the choice is consistent.
func shortestDelta(d, size float64) float64 {
	best := d
	if alt := d + size; alt*alt < best*best {
		best = alt
	}
	if alt := d - size; alt*alt < best*best {
		best = alt
	}
	return best
}

// wrap folds v into [0, size). Under the shipped constants a tick's
// displacement stays well below one domain width and a single fold is
// enough; a repulsive pair at near-zero separation can jump farther, so the
// modulo fallback keeps the invariant regardless.
func wrap(v, size float64) float64 {
	if v >= size {
		v -= size
	} else if v < 0 {
		v += size
	}
	if v < 0 || v >= size {
		v = math.Mod(math.Mod(v, size)+size, size)
	}
	return v
}
