package sim

import "testing"

func TestReferenceMatrixSigns(t *testing.T) {
	m := ReferenceMatrix()
	const k = CoeffMagnitude
	cases := []struct {
		from, to Kind
		want     float64
	}{
		{KindAlpha, KindAlpha, +k},
		{KindAlpha, KindBeta, -k},
		{KindAlpha, KindGamma, +k},
		{KindBeta, KindAlpha, +k},
		{KindBeta, KindBeta, -k},
		{KindBeta, KindGamma, -k},
		{KindGamma, KindAlpha, -k},
		{KindGamma, KindBeta, +k},
		{KindGamma, KindGamma, -k},
	}
	for _, c := range cases {
		if got := m.At(c.from, c.to); got != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestReferenceMatrixIsAsymmetric(t *testing.T) {
	m := ReferenceMatrix()
	pairs := [][2]Kind{
		{KindAlpha, KindBeta},
		{KindAlpha, KindGamma},
		{KindBeta, KindGamma},
	}
	for _, p := range pairs {
		if m.At(p[0], p[1]) == m.At(p[1], p[0]) {
			t.Errorf("At(%d,%d) and At(%d,%d) are equal; reference table should be asymmetric",
				p[0], p[1], p[1], p[0])
		}
	}
}

// The table generalizes beyond three kinds; a five-kind matrix must store
// and drive a world the same way.
func TestMatrixGeneralizesToMoreKinds(t *testing.T) {
	m := NewMatrix(5)
	if m.Kinds() != 5 {
		t.Fatalf("Kinds() = %d, want 5", m.Kinds())
	}
	m.Set(3, 4, -2.5)
	m.Set(4, 3, +1.0)
	if got := m.At(3, 4); got != -2.5 {
		t.Errorf("At(3,4) = %v, want -2.5", got)
	}
	if got := m.At(4, 3); got != 1.0 {
		t.Errorf("At(4,3) = %v, want 1.0", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}

	cfg := DefaultConfig()
	cfg.Population = 10
	cfg.Matrix = m
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld with 5-kind matrix failed: %v", err)
	}
	for i, p := range w.Snapshot() {
		if want := Kind(i % 5); p.Kind != want {
			t.Errorf("particle %d kind = %d, want %d", i, p.Kind, want)
		}
	}
	w.Step()
	for i, p := range w.Snapshot() {
		if p.X < 0 || p.X >= cfg.Width || p.Y < 0 || p.Y >= cfg.Height {
			t.Errorf("particle %d out of bounds after step: (%v,%v)", i, p.X, p.Y)
		}
	}
}
