// SPDX-License-Identifier: MIT
// Package: orbitpath/dijkstra
//
// edges.go: predecessor-chain reconstruction and symmetric edge dedup.

package dijkstra

// pairKey identifies an unordered pair {lo, hi}.
type pairKey struct{ lo, hi int }

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// chain returns the predecessor path source→…→target, or nil when the walk
// does not terminate at the source (unreachable) or revisits a node.
func (r *runner) chain(target int) []int {
	rev := make([]int, 0, 4)
	seen := make(map[int]bool, 4)
	cur, ok := target, true
	for ok {
		if seen[cur] {
			return nil
		}
		seen[cur] = true
		rev = append(rev, cur)
		cur, ok = r.prev[cur]
	}
	if rev[len(rev)-1] != r.source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// extractEdges walks every non-source node in walk order, reconstructs its
// chain and emits each consecutive link once. Weights are recomputed from
// weightFn rather than taken from the distance table.
func (r *runner) extractEdges() []Edge {
	capacity := len(r.nodes) - 1
	if capacity < 0 {
		capacity = 0
	}
	edges := make([]Edge, 0, capacity)
	seen := make(map[pairKey]struct{}, capacity)

	for _, v := range r.nodes {
		if v == r.source {
			continue
		}
		path := r.chain(v)
		if len(path) < 2 {
			continue // unreachable
		}
		for i := 0; i+1 < len(path); i++ {
			from, to := path[i], path[i+1]
			key := newPairKey(from, to)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{From: from, To: to, Weight: r.weightFn(from, to)})
		}
	}

	return edges
}
