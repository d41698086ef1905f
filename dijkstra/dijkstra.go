// SPDX-License-Identifier: MIT
// Package: orbitpath/dijkstra
//
// dijkstra.go: ShortestPaths entry point and the search loop.

package dijkstra

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/orbitpath/universe"
	"github.com/katalvlaran/orbitpath/weight"
)

// ShortestPaths computes shortest distances from source to every node of
// active over the implicit complete graph, and the deduplicated union of
// shortest-path tree edges.
//
// Preconditions and degenerate cases (never errors):
//  1. active == nil or source ∉ active → empty PathResult (see IsEmpty).
//  2. active == {source}               → Path=[source], Distances={source:0}, no edges.
//
// Options customization:
//
//   - WithTieBreak(t):     walk order for ties and edge emission (default lowest value).
//   - WithStrategy(s):     scan or heap selection (identical output).
//   - WithWeightFunc(fn):  replace weight.Weight.
//
// Complexity:
//
//   - Time:  O(n²) weight evaluations, n = |active|.
//   - Space: O(n).
func ShortestPaths(source int, active *universe.ActiveSet, opts ...Option) PathResult {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WeightFn == nil {
		cfg.WeightFn = weight.Weight
	}

	// 2) Snapshot the set once; everything below works on this copy.
	nodes := active.Values()

	// 3) Source must be active, otherwise the defined "not found" outcome.
	if !containsNode(nodes, source) {
		return emptyResult(source)
	}

	// 4) Fix the walk order and run the search.
	r := newRunner(source, walkOrder(nodes, cfg.TieBreak), cfg)
	r.init()
	r.process()

	// 5) Assemble the result.
	path := make([]int, len(nodes))
	copy(path, nodes)
	sort.Ints(path)

	return PathResult{
		Source:    source,
		Path:      path,
		Distances: r.finiteDistances(),
		Edges:     r.extractEdges(),
	}
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	source   int
	nodes    []int           // walk order
	rank     map[int]int     // node → position in nodes
	weightFn weight.Func     // edge-weight function
	strategy Strategy        // selection strategy
	dist     map[int]float64 // node → best-known distance from source
	prev     map[int]int     // node → predecessor; absent means none
	visited  map[int]bool    // node → distance finalized
	pq       nodePQ          // only used by StrategyHeap
}

func newRunner(source int, nodes []int, cfg Options) *runner {
	n := len(nodes)
	r := &runner{
		source:   source,
		nodes:    nodes,
		rank:     make(map[int]int, n),
		weightFn: cfg.WeightFn,
		strategy: cfg.Strategy,
		dist:     make(map[int]float64, n),
		prev:     make(map[int]int, n),
		visited:  make(map[int]bool, n),
	}
	for i, v := range nodes {
		r.rank[v] = i
	}

	return r
}

// init sets dist[v]=+∞ for all v, dist[source]=0, and seeds the heap if used.
func (r *runner) init() {
	for _, v := range r.nodes {
		r.dist[v] = math.Inf(1)
		r.visited[v] = false
	}
	r.dist[r.source] = 0

	if r.strategy == StrategyHeap {
		r.pq = make(nodePQ, 0, len(r.nodes))
		heap.Init(&r.pq)
		heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0, rank: r.rank[r.source]})
	}
}

// process repeatedly finalizes the closest unvisited node and relaxes the
// edges to every other unvisited node. It stops when no unvisited node has a
// finite distance.
func (r *runner) process() {
	next := r.nextByScan
	if r.strategy == StrategyHeap {
		next = r.nextByHeap
	}
	for {
		u, ok := next()
		if !ok {
			return
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// nextByScan returns the first unvisited node in walk order with the minimum
// finite distance.
func (r *runner) nextByScan() (int, bool) {
	best, found := 0, false
	minDist := math.Inf(1)
	for _, v := range r.nodes {
		if r.visited[v] {
			continue
		}
		if d := r.dist[v]; d < minDist {
			minDist = d
			best = v
			found = true
		}
	}

	return best, found
}

// nextByHeap pops until it finds a live entry. Entries are ordered by
// (dist, rank), which reproduces nextByScan's choice exactly.
func (r *runner) nextByHeap() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue // stale
		}

		return item.id, true
	}

	return 0, false
}

// relax offers u as predecessor to every unvisited node. Strict "<" keeps the
// first-found predecessor on equal cost.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, v := range r.nodes {
		if v == u || r.visited[v] {
			continue
		}
		alt := du + r.weightFn(u, v)
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		if r.strategy == StrategyHeap {
			heap.Push(&r.pq, &nodeItem{id: v, dist: alt, rank: r.rank[v]})
		}
	}
}

// finiteDistances copies dist, dropping unreachable (+∞) entries.
func (r *runner) finiteDistances() map[int]float64 {
	out := make(map[int]float64, len(r.dist))
	for v, d := range r.dist {
		if math.IsInf(d, 1) {
			continue
		}
		out[v] = d
	}

	return out
}

// walkOrder returns the node order for tb. The input slice is not modified.
func walkOrder(nodes []int, tb TieBreak) []int {
	out := make([]int, len(nodes))
	copy(out, nodes)
	if tb != TieBreakInsertionOrder {
		sort.Ints(out)
	}

	return out
}

func containsNode(nodes []int, v int) bool {
	for _, n := range nodes {
		if n == v {
			return true
		}
	}

	return false
}

// emptyResult is the "source not found" outcome: non-nil, zero-length fields.
func emptyResult(source int) PathResult {
	return PathResult{
		Source:    source,
		Path:      []int{},
		Distances: map[int]float64{},
		Edges:     []Edge{},
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int     // node value
	dist float64 // distance at push time
	rank int     // walk-order position, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, rank).
// Outdated entries stay in the heap and are skipped on pop.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by walk rank.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].rank < pq[j].rank
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop handles ordering.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
