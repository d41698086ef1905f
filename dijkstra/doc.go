// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over the implicit
// complete graph of an Active Set and reduces them to a display-ready edge set.
//
// What:
//
//	Every pair of distinct active integers is joined by an edge whose weight is
//	weight.Weight(a, b). No adjacency is stored; weights are computed on demand.
//	From a chosen source the engine runs Dijkstra, then walks each node's
//	predecessor chain back to the source and emits the union of those branches
//	as a deduplicated edge list.
//
// Result (PathResult):
//
//   - Path:      active node values sorted ascending (informational).
//   - Distances: node → shortest distance from Source; Source maps to 0.
//     Only finite distances are kept.
//   - Edges:     tree edges oriented away from Source; no pair appears twice in
//     either orientation; at most |active|−1 edges.
//
// Degenerate inputs are total, never errors:
//
//   - nil set, or Source not in the set → empty PathResult.
//   - {Source}                          → Path=[Source], Distances={Source:0}, no edges.
//
// Determinism:
//
//	Nodes are walked in a fixed order (see TieBreak). When several unvisited
//	nodes share the minimum distance, the first in walk order is finalized.
//	Relaxation uses strict "<", so an equal-cost alternative never replaces an
//	existing predecessor. The same walk order drives edge emission, so repeated
//	calls on the same input yield identical Distances and identical Edges.
//
// Strategies:
//
//   - StrategyScan: O(n²) linear scan for the minimum (default; n ≤ 100).
//   - StrategyHeap: lazy-decrease-key min-heap keyed by (distance, walk rank).
//     Observable output is identical to StrategyScan.
//
// Complexity:
//
//   - Time:  O(n²) weight evaluations per call (complete graph).
//   - Space: O(n) for distance, predecessor and visited tables.
//
// Concurrency:
//
//	ShortestPaths keeps no global state. The Active Set is snapshotted once on
//	entry; concurrent mutation of the set afterwards does not affect the call.
//
// Example:
//
//	set := universe.Starter()
//	res := dijkstra.ShortestPaths(1, set)
//	for _, e := range res.Edges {
//	    fmt.Printf("%d→%d %.3f\n", e.From, e.To, e.Weight)
//	}
package dijkstra
