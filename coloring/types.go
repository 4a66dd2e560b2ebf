// SPDX-License-Identifier: MIT

package coloring

import (
	"errors"
	"slices"
	"time"
)

// Sentinel errors for the coloring package.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrBadColors indicates a non-positive palette size.
	ErrBadColors = errors.New("coloring: number of colors must be positive")

	// ErrBadOptions indicates an inconsistent or out-of-range Options value.
	ErrBadOptions = errors.New("coloring: invalid options")

	// ErrDegenerateGraph indicates a graph with fewer than minVertices
	// vertices, for which one-point crossover has no interior cut.
	ErrDegenerateGraph = errors.New("coloring: graph too small for crossover")

	// ErrInvalidColoring is returned by Validate for a malformed or improper coloring.
	ErrInvalidColoring = errors.New("coloring: invalid coloring")
)

// minVertices is the smallest order with a non-empty cut range [1, n-1).
const minVertices = 3

// Chromosome assigns genes[i] as the color of vertex i.
type Chromosome []int

// Clone returns an independent copy of c.
func (c Chromosome) Clone() Chromosome { return slices.Clone(c) }

// Candidate is a chromosome paired with its fitness. The fitness is computed
// once when the candidate is created and the genes are never modified after.
type Candidate struct {
	Genes   Chromosome
	Fitness int
}

// clone deep-copies the candidate.
func (c Candidate) clone() Candidate {
	return Candidate{Genes: c.Genes.Clone(), Fitness: c.Fitness}
}

// Population is one generation of candidates.
type Population []Candidate

// Phase is the lifecycle state of an Optimizer.
type Phase int

const (
	// PhaseNew: constructed, no population yet.
	PhaseNew Phase = iota
	// PhaseInitialized: initial population scored, no generation run.
	PhaseInitialized
	// PhaseRunning: at least one generation run, not terminated.
	PhaseRunning
	// PhaseTerminated: a stop condition held; Step is a no-op.
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// StopReason records which termination condition ended a search.
type StopReason int

const (
	// StopNone: the search has not terminated.
	StopNone StopReason = iota
	// StopTarget: Best.Fitness reached Options.Target.
	StopTarget
	// StopMaxIterations: the iteration counter exceeded Options.MaxIterations.
	StopMaxIterations
	// StopTimeLimit: Options.TimeLimit elapsed.
	StopTimeLimit
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopTarget:
		return "target"
	case StopMaxIterations:
		return "max_iterations"
	case StopTimeLimit:
		return "time_limit"
	default:
		return "unknown"
	}
}

// GenerationStats summarizes one generation for Options.OnGeneration.
type GenerationStats struct {
	// Iteration is the counter value after the generation completed (≥ 1).
	Iteration int
	// Best is the best fitness observed over the whole run so far.
	Best int
	// Min, Max and Mean describe the new population only.
	Min  int
	Max  int
	Mean float64
}

// State is a read-only snapshot of the search.
type State struct {
	Phase     Phase
	Iteration int
	Best      Candidate
	Reason    StopReason
}

// Result is the terminal output of Optimize.
type Result struct {
	// Best is the lowest-fitness candidate seen during the run.
	Best Candidate
	// Iterations is the final iteration counter.
	Iterations int
	// Reason is the stop condition that fired.
	Reason StopReason
	// Elapsed is the wall-clock time spent in Init and Step.
	Elapsed time.Duration
}

// Solved reports whether the best candidate is a proper coloring.
func (r Result) Solved() bool { return r.Best.Fitness == 0 }
