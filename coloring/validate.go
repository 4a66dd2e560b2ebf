// SPDX-License-Identifier: MIT

// Validation helpers. Every check here runs before the first generation so
// that a search never fails half-way.

package coloring

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gacolor/core"
)

// minReproductionSize: two distinct parents are drawn from the mating pool.
const minReproductionSize = 2

// validateOptions checks internal consistency of Options. Complexity: O(1).
func validateOptions(o Options) error {
	switch {
	case o.GenerationSize <= 0:
		return fmt.Errorf("GenerationSize=%d must be > 0: %w", o.GenerationSize, ErrBadOptions)
	case o.ReproductionSize < minReproductionSize:
		return fmt.Errorf("ReproductionSize=%d must be ≥ %d: %w", o.ReproductionSize, minReproductionSize, ErrBadOptions)
	case o.TournamentK <= 0:
		return fmt.Errorf("TournamentK=%d must be > 0: %w", o.TournamentK, ErrBadOptions)
	case o.TournamentK > o.GenerationSize:
		return fmt.Errorf("TournamentK=%d exceeds GenerationSize=%d: %w", o.TournamentK, o.GenerationSize, ErrBadOptions)
	case o.EliteSize < 0:
		return fmt.Errorf("EliteSize=%d must be ≥ 0: %w", o.EliteSize, ErrBadOptions)
	case o.EliteSize > o.GenerationSize:
		return fmt.Errorf("EliteSize=%d exceeds GenerationSize=%d: %w", o.EliteSize, o.GenerationSize, ErrBadOptions)
	case math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1:
		return fmt.Errorf("MutationRate=%v not in [0,1]: %w", o.MutationRate, ErrBadOptions)
	case o.MaxIterations < 0:
		return fmt.Errorf("MaxIterations=%d must be ≥ 0: %w", o.MaxIterations, ErrBadOptions)
	case o.Target < 0:
		return fmt.Errorf("Target=%d must be ≥ 0: %w", o.Target, ErrBadOptions)
	case o.TimeLimit < 0:
		return fmt.Errorf("TimeLimit=%v must be ≥ 0: %w", o.TimeLimit, ErrBadOptions)
	}
	switch o.Crossover {
	case OnePoint, TwoPoint:
	default:
		return fmt.Errorf("Crossover=%d unknown: %w", int(o.Crossover), ErrBadOptions)
	}

	return nil
}

// ValidateOptions reports whether o would be accepted by New. Errors wrap
// ErrBadOptions.
func ValidateOptions(o Options) error {
	return validateOptions(o)
}

// Validate checks that genes is a proper coloring of g with colors colors:
// one gene per vertex, each in [0,colors), and no conflicting pair.
// The returned error wraps ErrInvalidColoring.
// Complexity: O(V+E).
func Validate(g *core.Graph, genes Chromosome, colors int) error {
	if g == nil {
		return ErrNilGraph
	}
	if colors <= 0 {
		return ErrBadColors
	}
	if len(genes) != g.VertexCount() {
		return fmt.Errorf("len(genes)=%d, want %d: %w", len(genes), g.VertexCount(), ErrInvalidColoring)
	}
	for v, c := range genes {
		if c < 0 || c >= colors {
			return fmt.Errorf("vertex %d has color %d not in [0,%d): %w", v, c, colors, ErrInvalidColoring)
		}
	}
	if f := Fitness(g.Adjacency(), genes); f != 0 {
		return fmt.Errorf("%d conflicting pairs: %w", f, ErrInvalidColoring)
	}

	return nil
}
