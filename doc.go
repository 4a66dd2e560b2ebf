// Package gacolor searches for proper vertex colorings of graphs with a
// generational genetic algorithm.
//
// 🚀 What is gacolor?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitives: a fixed-order index graph that freezes before search
//		• Builders: cycles, paths, complete and bipartite graphs, wheels, grids, G(n,p)
//		• Optimizer: tournament selection, one/two-point crossover, point mutation, elitism
//		• Instances: the classic "<colors> / <n> <m> / u v" benchmark format
//		• Experiments: repeated trials with a shrinking palette, persisted to
//		  memory, SQLite or plain text
//
// ✨ Why gacolor?
//
//   - Reproducible: every random choice flows from one seed
//   - Observable: step the search one generation at a time or hook each one
//   - Pure Go: the SQLite store needs no cgo
//
// Layout:
//
//	core/        index graph (vertices 0..n-1), symmetric storage when undirected
//	builder/     deterministic and seeded graph families
//	coloring/    the evolutionary optimizer and fitness helpers
//	gcol/        benchmark file parsing and writing
//	experiment/  trial driver with palette decrement
//	store/       memory, sqlite and text result stores
//	config/      YAML configuration
//	cmd/gacolor/ solve, bench and gen subcommands
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	is 2-colorable: {0,2} and {1,3}; coloring.New(g, 2, opts).Optimize()
//	finds such a split with fitness 0.
//
//	go install github.com/katalvlaran/gacolor/cmd/gacolor@latest
package gacolor
