// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gacolor/core"
)

// Optimizer owns one evolutionary search: a frozen adjacency snapshot, the
// palette size, the options, the RNG stream and the search state.
type Optimizer struct {
	adj    [][]int
	n      int
	colors int
	opts   Options
	rng    *rand.Rand

	phase   Phase
	reason  StopReason
	iter    int
	pop     Population
	best    Candidate
	started time.Time
	elapsed time.Duration
}

// New validates its inputs, freezes g and snapshots its adjacency.
//
// Errors (wrapped with "coloring.New"):
//   - ErrNilGraph, ErrBadColors, ErrBadOptions, ErrDegenerateGraph.
//
// Complexity: O(V+E) for the snapshot.
func New(g *core.Graph, colors int, opts Options) (*Optimizer, error) {
	if g == nil {
		return nil, fmt.Errorf("coloring.New: %w", ErrNilGraph)
	}
	if colors <= 0 {
		return nil, fmt.Errorf("coloring.New: colors=%d: %w", colors, ErrBadColors)
	}
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("coloring.New: %w", err)
	}
	if n := g.VertexCount(); n < minVertices {
		return nil, fmt.Errorf("coloring.New: n=%d < %d: %w", n, minVertices, ErrDegenerateGraph)
	}

	g.Freeze()
	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	return &Optimizer{
		adj:    g.Adjacency(),
		n:      g.VertexCount(),
		colors: colors,
		opts:   opts,
		rng:    rng,
	}, nil
}

// Init builds and scores the initial population and sets Best to its
// fittest member. It is a no-op unless the optimizer is in PhaseNew.
// If the initial population already meets the target the search terminates
// at iteration 0.
func (o *Optimizer) Init() {
	if o.phase != PhaseNew {
		return
	}
	o.started = time.Now()
	o.pop = o.initialPopulation()
	o.best = fittest(o.pop).clone()
	o.iter = 0
	o.phase = PhaseInitialized
	o.checkStop()
	o.elapsed = time.Since(o.started)
}

// Step runs one generation and reports whether the search has terminated.
// It calls Init first when needed. Once terminated, Step does nothing and
// returns true. Callers can layer extra stop predicates between Steps.
func (o *Optimizer) Step() bool {
	if o.phase == PhaseNew {
		o.Init()
	}
	if o.phase == PhaseTerminated {
		return true
	}

	o.generation()
	o.iter++
	o.phase = PhaseRunning
	o.checkStop()
	o.elapsed = time.Since(o.started)

	return o.phase == PhaseTerminated
}

// Optimize runs Init and Step until a stop condition holds and returns the
// best candidate with the final iteration count. Calling it again after
// termination returns the same result.
func (o *Optimizer) Optimize() Result {
	for !o.Step() {
	}

	return o.Result()
}

// Result returns the current best, iteration count and stop reason.
func (o *Optimizer) Result() Result {
	return Result{
		Best:       o.best.clone(),
		Iterations: o.iter,
		Reason:     o.reason,
		Elapsed:    o.elapsed,
	}
}

// State returns a snapshot of the search state.
func (o *Optimizer) State() State {
	return State{
		Phase:     o.phase,
		Iteration: o.iter,
		Best:      o.best.clone(),
		Reason:    o.reason,
	}
}

// Population returns a deep copy of the current population (nil before Init).
func (o *Optimizer) Population() Population {
	if o.pop == nil {
		return nil
	}
	out := make(Population, len(o.pop))
	for i, c := range o.pop {
		out[i] = c.clone()
	}

	return out
}

// Colors returns the palette size.
func (o *Optimizer) Colors() int { return o.colors }

// generation replaces the population with the next one.
func (o *Optimizer) generation() {
	size := o.opts.GenerationSize
	next := make(Population, 0, size)
	next = append(next, elite(o.pop, o.opts.EliteSize)...)

	pool := matingPool(o.rng, o.pop, o.opts.ReproductionSize, o.opts.TournamentK)
	for len(next) < size {
		i, j := distinctPair(o.rng, len(pool))
		childA, childB := o.crossover(pool[i].Genes, pool[j].Genes)
		mutate(o.rng, childA, o.opts.MutationRate, o.colors)
		mutate(o.rng, childB, o.opts.MutationRate, o.colors)

		next = append(next, o.score(childA))
		// One free slot left: keep the first child, drop the second.
		if len(next) < size {
			next = append(next, o.score(childB))
		}
	}
	o.pop = next

	if f := fittest(next); f.Fitness < o.best.Fitness {
		o.best = f.clone()
	}

	if o.opts.OnGeneration != nil {
		lo, hi, mean := summarize(next)
		o.opts.OnGeneration(GenerationStats{
			Iteration: o.iter + 1,
			Best:      o.best.Fitness,
			Min:       lo,
			Max:       hi,
			Mean:      mean,
		})
	}
}

// checkStop moves the optimizer to PhaseTerminated when a stop condition
// holds. The target check comes first so that a solved run always reports
// StopTarget.
func (o *Optimizer) checkStop() {
	switch {
	case o.best.Fitness <= o.opts.Target:
		o.reason = StopTarget
	case o.iter > o.opts.MaxIterations:
		o.reason = StopMaxIterations
	case o.opts.TimeLimit > 0 && time.Since(o.started) >= o.opts.TimeLimit:
		o.reason = StopTimeLimit
	default:
		return
	}
	o.phase = PhaseTerminated
}
