package render

import (
	"testing"

	"torus-life/internal/sim"
)

func TestKindColorsAreDistinct(t *testing.T) {
	seen := map[[4]uint8]sim.Kind{}
	for k := sim.Kind(0); k < sim.NumKinds; k++ {
		c := KindColor(k, sim.NumKinds)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("kinds %d and %d share color %v", prev, k, c)
		}
		seen[key] = k
	}
}

func TestKindColorBeyondFixedPalette(t *testing.T) {
	// Extra kinds fall back to hue-spaced colors and must stay opaque.
	for k := 3; k < 8; k++ {
		c := KindColor(sim.Kind(k), 8)
		if c.A != 255 {
			t.Errorf("kind %d color not opaque: %v", k, c)
		}
	}
	a := KindColor(3, 8)
	b := KindColor(3, 8)
	if a != b {
		t.Errorf("fallback color not deterministic: %v vs %v", a, b)
	}
}
