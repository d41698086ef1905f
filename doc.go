// SPDX-License-Identifier: MIT

// Package orbitpath computes shortest path networks over a universe of the
// integers 1–100.
//
// Each placed integer is a node. Every pair of nodes is joined by an implicit
// edge whose weight mixes distance and number theory:
//
//	weight(a, b) = |a − b| + gcd(a, b)/10 + lcm(a, b)/1000
//
// Given the active integers and a selected source, the engine runs Dijkstra
// over this complete graph. It returns the shortest distance to every node
// and the deduplicated set of tree edges a display layer draws.
//
// Layout:
//
//	weight/      gcd, lcm and the edge-weight function
//	universe/    ActiveSet: validated, ordered, concurrency-safe node set
//	dijkstra/    ShortestPaths, PathResult, tie-break and strategy options
//	cmd/orbitpathd   JSON HTTP service over the engine (chi, zap, prometheus)
//	examples/    runnable session walkthrough
//
// Quick example:
//
//	res := dijkstra.ShortestPaths(1, universe.Starter())
//	fmt.Println(res.Distances[42]) // 41.142
//
//	    go get github.com/katalvlaran/orbitpath
package orbitpath
