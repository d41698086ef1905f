// Package dijkstra_test provides runnable examples for the shortest-path engine.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orbitpath/dijkstra"
	"github.com/katalvlaran/orbitpath/universe"
)

// ExampleShortestPaths_starter runs the engine on the starter universe from 1.
// Every node is cheapest to reach directly, so the tree is a star.
func ExampleShortestPaths_starter() {
	res := dijkstra.ShortestPaths(1, universe.Starter())
	for _, e := range res.Edges {
		fmt.Printf("%d→%d %.3f\n", e.From, e.To, e.Weight)
	}
	fmt.Printf("dist[42]=%.3f\n", res.Distances[42])
	// Output:
	// 1→2 1.102
	// 1→5 4.105
	// 1→10 9.110
	// 1→42 41.142
	// dist[42]=41.142
}

// ExampleShortestPaths_chain shows a two-hop branch (12→5→4) and the ranked
// proximity list a side panel would display.
func ExampleShortestPaths_chain() {
	set, _ := universe.FromValues(4, 5, 8, 12)
	res := dijkstra.ShortestPaths(12, set)
	hops := make([]string, 0, len(res.Edges))
	for _, e := range res.Edges {
		hops = append(hops, fmt.Sprintf("%d→%d", e.From, e.To))
	}
	fmt.Println(strings.Join(hops, " "))
	for _, p := range res.Ranked() {
		fmt.Printf("P-%d %.3f\n", p.Node, p.Distance)
	}
	// Output:
	// 12→5 5→4 12→8
	// P-8 4.424
	// P-5 7.160
	// P-4 8.280
}

// ExampleShortestPaths_sourceAbsent shows the empty "not found" result.
func ExampleShortestPaths_sourceAbsent() {
	set, _ := universe.FromValues(1, 2, 3)
	res := dijkstra.ShortestPaths(7, set)
	fmt.Println(res.IsEmpty(), len(res.Edges), len(res.Distances))
	// Output: true 0 0
}
