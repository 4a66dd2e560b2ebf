// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the edge u→v, mirrored as v→u on undirected graphs.
//
// Implementation:
//   - Stage 1: Validate both indices against [0,n).
//   - Stage 2: Under the write lock, enforce frozen/loop/multi-edge policy.
//   - Stage 3: Append the head(s) to the adjacency slices.
//
// Errors:
//   - ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrFrozen.
//
// Complexity:
//   - Time O(deg(u)) for the duplicate check, amortized O(1) append.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkIndex(u); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, err)
	}
	if err := g.checkIndex(v); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrFrozen)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.allowMulti && slices.Contains(g.adj[u], v) {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.adj[u] = append(g.adj[u], v)
	// A loop is stored once even when undirected; mirroring it would double
	// count the same relation.
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++

	return nil
}

// HasEdge reports whether u→v is stored. Out-of-range indices yield false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkIndex(u) != nil || g.checkIndex(v) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Contains(g.adj[u], v)
}

// Neighbors returns a copy of the heads stored for u, in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.checkIndex(u); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.adj[u]), nil
}

// Degree returns the number of stored heads of u (out-degree when directed).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkIndex(u); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", u, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Adjacency returns a deep copy of the adjacency relation: out[u] lists the
// heads stored for u. The copy shares nothing with g.
// Complexity: O(V+E).
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.n)
	for u := range g.adj {
		out[u] = slices.Clone(g.adj[u])
		if out[u] == nil {
			out[u] = []int{}
		}
	}

	return out
}

// Freeze makes the graph read-only. It is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// VertexCount returns n. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of successful AddEdge calls; a mirrored
// undirected edge counts once. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Directed reports whether edges are stored in one direction only.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// checkIndex validates i ∈ [0,n).
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= g.n {
		return fmt.Errorf("index %d not in [0,%d): %w", i, g.n, ErrVertexOutOfRange)
	}

	return nil
}
