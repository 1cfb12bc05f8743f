package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KindStats aggregates one kind's particles in a snapshot.
type KindStats struct {
	Count     int     `json:"count"`
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`
}

// Summary is a read-only per-tick digest used by the debug overlay and the
// server status endpoint. The centroid is the plain coordinate mean, without
// unwrapping across the seam.
type Summary struct {
	Tick       uint64      `json:"tick"`
	Population int         `json:"population"`
	Kinds      []KindStats `json:"kinds"`
	MeanStep   float64     `json:"mean_step"`
	MaxStep    float64     `json:"max_step"`
}

// Summary computes the digest for the current state.
func (w *World) Summary() Summary {
	return summarize(w.tick, w.particles, w.cfg.Matrix.Kinds(), w.lastStep)
}

func summarize(tick uint64, particles []Particle, kinds int, steps []float64) Summary {
	s := Summary{
		Tick:       tick,
		Population: len(particles),
		Kinds:      make([]KindStats, kinds),
	}

	xs := make([][]float64, kinds)
	ys := make([][]float64, kinds)
	for _, p := range particles {
		k := int(p.Kind)
		xs[k] = append(xs[k], p.X)
		ys[k] = append(ys[k], p.Y)
	}
	for k := 0; k < kinds; k++ {
		s.Kinds[k].Count = len(xs[k])
		if len(xs[k]) > 0 {
			s.Kinds[k].CentroidX = stat.Mean(xs[k], nil)
			s.Kinds[k].CentroidY = stat.Mean(ys[k], nil)
		}
	}

	if len(steps) > 0 {
		s.MeanStep = stat.Mean(steps, nil)
		s.MaxStep = floats.Max(steps)
	}
	return s
}
