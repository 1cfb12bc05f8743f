package sim

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	particles := []Particle{
		{Kind: KindAlpha, X: 10, Y: 20},
		{Kind: KindAlpha, X: 30, Y: 40},
		{Kind: KindBeta, X: 50, Y: 60},
	}
	steps := []float64{3, 4, 5}

	s := summarize(12, particles, NumKinds, steps)

	if s.Tick != 12 {
		t.Errorf("tick = %d, want 12", s.Tick)
	}
	if s.Population != 3 {
		t.Errorf("population = %d, want 3", s.Population)
	}
	if len(s.Kinds) != NumKinds {
		t.Fatalf("kinds = %d, want %d", len(s.Kinds), NumKinds)
	}

	alpha := s.Kinds[KindAlpha]
	if alpha.Count != 2 || alpha.CentroidX != 20 || alpha.CentroidY != 30 {
		t.Errorf("alpha stats = %+v, want count 2 centroid (20,30)", alpha)
	}
	beta := s.Kinds[KindBeta]
	if beta.Count != 1 || beta.CentroidX != 50 || beta.CentroidY != 60 {
		t.Errorf("beta stats = %+v, want count 1 centroid (50,60)", beta)
	}
	if gamma := s.Kinds[KindGamma]; gamma.Count != 0 {
		t.Errorf("gamma count = %d, want 0", gamma.Count)
	}

	if math.Abs(s.MeanStep-4) > eps {
		t.Errorf("mean step = %v, want 4", s.MeanStep)
	}
	if s.MaxStep != 5 {
		t.Errorf("max step = %v, want 5", s.MaxStep)
	}
}

func TestWorldSummaryBeforeFirstTick(t *testing.T) {
	w := testWorld(t, 9)
	s := w.Summary()
	if s.Tick != 0 {
		t.Errorf("tick = %d, want 0", s.Tick)
	}
	if s.MeanStep != 0 || s.MaxStep != 0 {
		t.Errorf("steps before first tick = (%v,%v), want zero", s.MeanStep, s.MaxStep)
	}
	total := 0
	for _, k := range s.Kinds {
		total += k.Count
	}
	if total != 9 {
		t.Errorf("kind counts sum to %d, want 9", total)
	}
}
