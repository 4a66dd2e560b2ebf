// SPDX-License-Identifier: MIT

// Package core provides the dense, index-addressed Graph consumed by the
// coloring optimizer.
//
// A Graph G = (V,E) has a fixed vertex set V = {0, 1, …, n−1} chosen at
// construction time and an adjacency relation stored as one neighbor slice
// per vertex:
//
//	adj[u] = [v₁, v₂, …]   // every v ∈ [0,n)
//
// Adjacency policy:
//
//   - Undirected graphs (the default) mirror every edge: AddEdge(u,v) stores
//     u→v and v→u. Algorithms that walk adj[u] for every u therefore observe
//     each undirected edge twice.
//   - Directed graphs (WithDirected(true)) store exactly u→v.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)  store one direction per edge
//	– WithLoops()                  permit AddEdge(v,v)
//	– WithMultiEdges()             permit repeated AddEdge(u,v)
//
// Lifecycle:
//
//	NewGraph(n, opts...) → AddEdge(...)* → Freeze() → read-only use
//
// Freeze is one-way. After it, AddEdge returns ErrFrozen and readers may take
// Adjacency() snapshots knowing the relation will never change again.
//
// Concurrency:
//
// A single sync.RWMutex guards the adjacency and the frozen flag, so graphs
// may be built and queried from several goroutines. Hot loops should work
// on an Adjacency() snapshot instead of calling Neighbors repeatedly.
//
// Errors:
//
//	ErrTooFewVertices       - n < 1 at construction.
//	ErrVertexOutOfRange     - an index outside [0,n).
//	ErrLoopNotAllowed       - self-loop while loops are disabled.
//	ErrMultiEdgeNotAllowed  - repeated edge while multi-edges are disabled.
//	ErrFrozen               - mutation after Freeze.
package core
