package sim

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Particle is a single typed point particle. Its slot index inside the
// World is its identity for the whole run.
type Particle struct {
	Kind Kind
	X, Y float64
}

// World owns the fixed-size particle population. It is created once, stepped
// in place every tick and never resized. The engine (engine.go) is the only
// writer; everything else reads snapshots.
type World struct {
	cfg       Config
	particles []Particle
	rng       *rand.Rand
	tick      uint64
	log       Logger

	// Per-tick scratch: pass 1 accumulates displacements here, pass 2
	// applies them. Preallocated so a tick does not allocate.
	scratchX []float64
	scratchY []float64
	lastStep []float64
}

// NewWorld creates a world from the config without logging.
func NewWorld(cfg Config) (*World, error) {
	return NewWorldWithLogger(cfg, NoOpLogger{})
}

// NewWorldWithLogger creates a world from the config. Kinds are assigned
// round-robin by index; positions are drawn from a generator seeded with
// cfg.Seed, so the same seed always reproduces the same layout.
func NewWorldWithLogger(cfg Config, log Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	w := &World{
		cfg:       cfg,
		particles: make([]Particle, cfg.Population),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		log:       log,
		scratchX:  make([]float64, cfg.Population),
		scratchY:  make([]float64, cfg.Population),
		lastStep:  make([]float64, cfg.Population),
	}
	kinds := cfg.Matrix.Kinds()
	for i := range w.particles {
		w.particles[i].Kind = Kind(i % kinds)
	}
	w.place()
	log.Infof("world initialized: population=%d domain=%gx%g kinds=%d seed=%d",
		cfg.Population, cfg.Width, cfg.Height, kinds, cfg.Seed)
	return w, nil
}

// place assigns initial positions according to the placement mode.
func (w *World) place() {
	switch w.cfg.Placement {
	case PlacementClustered:
		w.placeClustered()
	default:
		w.placeUniform()
	}
}

func (w *World) placeUniform() {
	for i := range w.particles {
		w.particles[i].X = w.rng.Float64() * w.cfg.Width
		w.particles[i].Y = w.rng.Float64() * w.cfg.Height
	}
}

// Clustered placement constants.
const (
	noiseScale     = 64.0
	noiseThreshold = 0.1
	placeAttempts  = 24
)

// placeClustered rejection-samples positions against a Perlin field so the
// initial layout is clumpy. Sampling stays on the world rng, so the layout
// is still a pure function of the seed. After placeAttempts rejections the
// last candidate is kept.
func (w *World) placeClustered() {
	noise := perlin.NewPerlin(2, 2, 3, w.cfg.Seed)
	for i := range w.particles {
		var x, y float64
		for attempt := 0; attempt < placeAttempts; attempt++ {
			x = w.rng.Float64() * w.cfg.Width
			y = w.rng.Float64() * w.cfg.Height
			if noise.Noise2D(x/noiseScale, y/noiseScale) > noiseThreshold {
				break
			}
		}
		w.particles[i].X = x
		w.particles[i].Y = y
	}
}

// Reseed redraws all positions from a fresh generator and restarts the tick
// counter. Kinds are untouched.
func (w *World) Reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.place()
	w.tick = 0
	for i := range w.lastStep {
		w.lastStep[i] = 0
	}
	w.log.Infof("world reseeded: seed=%d", seed)
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// Population returns the fixed particle count.
func (w *World) Population() int {
	return len(w.particles)
}

// Config returns the config the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Snapshot copies the current particle states. The copy is the presentation
// layer's view between ticks; mutating it has no effect on the world.
func (w *World) Snapshot() []Particle {
	out := make([]Particle, len(w.particles))
	copy(out, w.particles)
	return out
}
