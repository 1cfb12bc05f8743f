package sim

import "fmt"

// Placement selects how initial particle positions are drawn.
type Placement int

const (
	// PlacementUniform spreads particles uniformly over the domain.
	PlacementUniform Placement = iota
	// PlacementClustered rejection-samples positions against a seeded
	// Perlin noise field so particles start clumped.
	PlacementClustered
)

// Default simulation constants.
const (
	DefaultPopulation = 600
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0

	// BaseCoeff scales every pairwise force term uniformly.
	BaseCoeff = 5e-3

	// DefaultMinDistSq is the squared separation below which attracting
	// pairs stop contributing force, keeping them from collapsing onto
	// each other.
	DefaultMinDistSq = 9.0
)

// Config carries everything the core needs: population size, domain extent,
// force constants, the interaction matrix, the placement mode and the seed.
type Config struct {
	Population int
	Width      float64
	Height     float64
	MinDistSq  float64
	BaseCoeff  float64
	Matrix     *Matrix
	Placement  Placement
	Seed       int64
}

// DefaultConfig returns a config with the reference constants and matrix.
func DefaultConfig() Config {
	return Config{
		Population: DefaultPopulation,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MinDistSq:  DefaultMinDistSq,
		BaseCoeff:  BaseCoeff,
		Matrix:     ReferenceMatrix(),
		Placement:  PlacementUniform,
		Seed:       42,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Population <= 0 {
		return fmt.Errorf("population must be positive, got %d", c.Population)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("domain must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.MinDistSq < 0 {
		return fmt.Errorf("minimum distance squared must be non-negative, got %g", c.MinDistSq)
	}
	if c.Matrix == nil {
		return fmt.Errorf("interaction matrix is required")
	}
	if c.Matrix.Kinds() <= 0 {
		return fmt.Errorf("interaction matrix must cover at least one kind, got %d", c.Matrix.Kinds())
	}
	if c.Placement != PlacementUniform && c.Placement != PlacementClustered {
		return fmt.Errorf("unknown placement mode %d", c.Placement)
	}
	return nil
}
