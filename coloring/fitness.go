// SPDX-License-Identifier: MIT

package coloring

// Fitness returns the number of stored adjacency pairs (u,v) with
// genes[u] == genes[v]. adj is the relation as stored (see core), so an
// undirected conflict is counted once per direction. genes must hold
// len(adj) entries.
//
// Pure and deterministic. Complexity: O(V+E).
func Fitness(adj [][]int, genes Chromosome) int {
	conflicts := 0
	for u, heads := range adj {
		cu := genes[u]
		for _, v := range heads {
			if genes[v] == cu {
				conflicts++
			}
		}
	}

	return conflicts
}

// Conflicts lists the ordered pairs counted by Fitness, in adjacency order.
func Conflicts(adj [][]int, genes Chromosome) [][2]int {
	var out [][2]int
	for u, heads := range adj {
		for _, v := range heads {
			if genes[v] == genes[u] {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// ColorsUsed returns the number of distinct colors present in genes.
func ColorsUsed(genes Chromosome) int {
	seen := make(map[int]struct{}, len(genes))
	for _, c := range genes {
		seen[c] = struct{}{}
	}

	return len(seen)
}
