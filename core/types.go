// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewVertices indicates a graph was requested with n < 1 vertices.
	ErrTooFewVertices = errors.New("core: too few vertices")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores one direction (true) or mirrors
// the edge in both directions (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a fixed-order graph over vertices 0..n-1.
//
// mu protects adj, edges and frozen. Configuration flags are immutable after
// NewGraph returns and are read without locking.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // store u→v only
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	n      int     // vertex count, fixed
	adj    [][]int // adj[u] lists stored heads of u
	edges  int     // logical edges added (a mirrored pair counts once)
	frozen bool    // no further mutation once set
}

// NewGraph creates an edgeless Graph on n vertices.
// By default the Graph is undirected, with no loops and no multi-edges.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	g := &Graph{
		n:   n,
		adj: make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
