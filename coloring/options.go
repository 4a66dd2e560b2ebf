// SPDX-License-Identifier: MIT

package coloring

import (
	"math/rand"
	"time"
)

// CrossoverKind selects the recombination operator.
type CrossoverKind int

const (
	// OnePoint: single cut bp ∈ [1,n-1); children A[:bp]+B[bp:], B[:bp]+A[bp:].
	OnePoint CrossoverKind = iota
	// TwoPoint: two independent cuts in [1,n-1), swapped into ascending
	// order; children A[:p]+B[p:q]+A[q:] and B[:p]+A[p:q]+B[q:]. Not used
	// unless selected explicitly.
	TwoPoint
)

func (k CrossoverKind) String() string {
	switch k {
	case OnePoint:
		return "one_point"
	case TwoPoint:
		return "two_point"
	default:
		return "unknown"
	}
}

// Default tuning of the classic simple GA for coloring.
const (
	DefaultGenerationSize   = 50
	DefaultMutationRate     = 0.7
	DefaultReproductionSize = 25
	DefaultTournamentK      = 4
	DefaultEliteSize        = 3
	DefaultMaxIterations    = 10000
	DefaultTarget           = 0
)

// Options configures one search. Use DefaultOptions as a starting point;
// the zero value is rejected by New.
type Options struct {
	// GenerationSize is the exact population size of every generation (> 0).
	GenerationSize int
	// MutationRate is the per-child probability of a point mutation, in [0,1].
	MutationRate float64
	// ReproductionSize is the mating pool size (≥ 2, parents are distinct positions).
	ReproductionSize int
	// TournamentK is the number of draws per tournament (1..GenerationSize).
	TournamentK int
	// EliteSize is the number of best candidates copied forward (0..GenerationSize).
	EliteSize int
	// MaxIterations is the iteration ceiling (≥ 0); the run stops once the
	// counter exceeds it.
	MaxIterations int
	// Target is the fitness that signals success (≥ 0, normally 0).
	Target int

	// Seed seeds the private RNG when Rand is nil. Seed==0 maps to a fixed
	// default seed, never to a time-based one.
	Seed int64
	// Rand, when non-nil, is used as-is and takes precedence over Seed.
	// It must not be shared with another goroutine during the search.
	Rand *rand.Rand

	// Crossover selects the recombination operator (OnePoint by default).
	Crossover CrossoverKind
	// TimeLimit, when positive, stops the search at the first generation
	// boundary after it elapses. Zero disables the check.
	TimeLimit time.Duration
	// OnGeneration, when non-nil, is called after every generation.
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns the classic tuning: 50 candidates, mutation rate
// 0.7, mating pool of 25, 4-way tournaments, 3 elites, at most 10000
// iterations, target 0.
func DefaultOptions() Options {
	return Options{
		GenerationSize:   DefaultGenerationSize,
		MutationRate:     DefaultMutationRate,
		ReproductionSize: DefaultReproductionSize,
		TournamentK:      DefaultTournamentK,
		EliteSize:        DefaultEliteSize,
		MaxIterations:    DefaultMaxIterations,
		Target:           DefaultTarget,
		Crossover:        OnePoint,
	}
}
