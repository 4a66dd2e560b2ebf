// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the classic graph
// families used as coloring fixtures and benchmarks.
//
// Every constructor returns a Constructor closure; BuildGraph resolves the
// functional options, allocates a core.Graph of the right order and lets the
// closure emit its edges.
//
// Families and their chromatic numbers (useful as coloring oracles):
//
//	Cycle(n)               C_n, χ = 2 for even n, 3 for odd n   (n ≥ 3)
//	Path(n)                P_n, χ = 2                            (n ≥ 2)
//	Complete(n)            K_n, χ = n                            (n ≥ 1)
//	CompleteBipartite(a,b) K_{a,b}, χ = 2                        (a,b ≥ 1)
//	Wheel(n)               C_{n-1} + hub, χ = 3 or 4             (n ≥ 4)
//	Grid(r,c)              r×c lattice, χ = 2 when r·c ≥ 2       (r,c ≥ 1)
//	RandomSparse(n,p)      G(n,p), requires an RNG for 0<p<1     (n ≥ 1)
//
// Vertex numbering is part of the contract:
//
//   - Cycle/Path/Complete/RandomSparse: 0..n-1 in the natural order.
//   - CompleteBipartite: left side 0..a-1, right side a..a+b-1.
//   - Wheel: rim 0..n-2, hub n-1.
//   - Grid: cell (r,c) is r*cols+c (row-major).
//
// Determinism: the same constructor, options and seed always produce the
// same adjacency, edge for edge, in the same insertion order.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
