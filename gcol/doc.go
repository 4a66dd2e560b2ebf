// SPDX-License-Identifier: MIT

// Package gcol reads and writes graph-coloring benchmark instances.
//
// The format is line oriented:
//
//	<min colors>
//	<vertex count> <edge count>
//	<u> <v>
//	...
//
// Vertices are 1-indexed in the file and 0-indexed in the resulting
// core.Graph. Blank lines are ignored. The declared edge count is kept in
// Instance.DeclaredEdges but is not enforced.
//
// Storage policy:
//   - Undirected (default): every listed edge is stored in both directions,
//     so a monochromatic edge costs 2 in coloring.Fitness.
//   - WithDirected(true): edges are stored exactly as listed.
//   - Repeated edges are skipped unless WithDuplicates(false) is given, in
//     which case they are kept as parallel edges.
package gcol
