// SPDX-License-Identifier: MIT
// Package: orbitpath/dijkstra
//
// result.go: read-only helpers over PathResult for display consumers.

package dijkstra

import "sort"

// IsEmpty reports whether r is the "source not found" outcome.
func (r PathResult) IsEmpty() bool {
	return len(r.Path) == 0
}

// Ranked returns every reachable node other than Source, closest first.
// Equal distances are ordered by node value.
func (r PathResult) Ranked() []Proximity {
	out := make([]Proximity, 0, len(r.Distances))
	for node, d := range r.Distances {
		if node == r.Source {
			continue
		}
		out = append(out, Proximity{Node: node, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Node < out[j].Node
	})

	return out
}

// TotalWeight sums the weights of all tree edges.
func (r PathResult) TotalWeight() float64 {
	var sum float64
	for _, e := range r.Edges {
		sum += e.Weight
	}

	return sum
}

// HasEdge reports whether {a, b} is a tree edge in either orientation.
func (r PathResult) HasEdge(a, b int) bool {
	for _, e := range r.Edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}

	return false
}
