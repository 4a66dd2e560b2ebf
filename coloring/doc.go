// SPDX-License-Identifier: MIT

// Package coloring searches for a proper (or near-proper) vertex coloring
// of a core.Graph with a fixed palette, using a generational evolutionary
// algorithm.
//
// Model:
//
//	Chromosome  genes[i] ∈ [0,colors) is the color of vertex i
//	Candidate   a Chromosome plus its fitness, scored exactly once
//	Fitness     number of stored adjacency pairs (u,v) with genes[u]==genes[v]
//	Population  GenerationSize candidates, replaced wholesale each generation
//
// Fitness counts ordered pairs exactly as core stores them. On an undirected
// graph every edge is stored in both directions, so one monochromatic edge
// costs 2; on a directed graph it costs 1. In both modes Fitness == 0 iff
// the coloring is proper. Lower is better.
//
// One generation (Optimizer.Step):
//
//  1. Elitism: the EliteSize lowest-fitness candidates are copied forward.
//  2. Selection: ReproductionSize tournaments of TournamentK draws with
//     replacement; strict "<" comparison so the first drawn wins ties.
//  3. Variation: two distinct mating-pool positions are crossed over
//     (one-point by default), each child mutated with probability
//     MutationRate at a single locus, then scored. Children are appended
//     until the population is full; when a single slot remains the second
//     child of the pair is discarded.
//  4. Replacement, then Best = min(Best, fittest(new population)). Best
//     never regresses.
//
// Termination: Iteration > MaxIterations, Best.Fitness ≤ Target, or the
// optional TimeLimit elapsed, all checked at generation boundaries only.
// Optimize therefore runs at most MaxIterations+1 generations.
//
// Lifecycle:
//
//	New ──► PhaseNew ──Init──► PhaseInitialized ──Step──► PhaseRunning ──► PhaseTerminated
//
// Randomness: every draw goes through one *rand.Rand owned by the Optimizer
// (Options.Rand, or a source seeded from Options.Seed), so runs are exactly
// reproducible. An Optimizer is not safe for concurrent use; independent
// Optimizers may run in parallel.
//
// Errors (all reported by New, never mid-run):
//
//	ErrNilGraph         graph is nil
//	ErrBadColors        colors ≤ 0
//	ErrBadOptions       non-positive sizes, elite/tournament larger than the
//	                    population, rate outside [0,1], negative limits
//	ErrDegenerateGraph  fewer than 3 vertices (no interior crossover cut)
package coloring
