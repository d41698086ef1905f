// SPDX-License-Identifier: MIT
// Package: orbitpath/dijkstra
//
// types.go: result types, tie-break and strategy enums, functional options.

package dijkstra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/orbitpath/weight"
)

// Sentinel errors returned by the parsers in this package.
// ShortestPaths itself never fails.
var (
	// ErrUnknownTieBreak indicates a tie-break name ParseTieBreak does not recognize.
	ErrUnknownTieBreak = errors.New("dijkstra: unknown tie-break")

	// ErrUnknownStrategy indicates a strategy name ParseStrategy does not recognize.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Edge is one link of the shortest-path tree, oriented away from the source.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Proximity is a (node, distance) pair used by ranked views.
type Proximity struct {
	Node     int     `json:"node"`
	Distance float64 `json:"distance"`
}

// PathResult is the engine's output for a single (source, active set) request.
type PathResult struct {
	Source    int             `json:"source"`
	Path      []int           `json:"path"`
	Distances map[int]float64 `json:"distances"`
	Edges     []Edge          `json:"edges"`
}

// TieBreak selects the walk order used to break equal-distance ties.
type TieBreak int

const (
	// TieBreakLowestValue walks nodes in ascending value; among ties the
	// lowest value wins. Output is independent of insertion order.
	TieBreakLowestValue TieBreak = iota

	// TieBreakInsertionOrder walks nodes in the Active Set's insertion order;
	// among ties the earliest inserted wins.
	TieBreakInsertionOrder
)

// String returns the config/wire name of t.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLowestValue:
		return "lowest"
	case TieBreakInsertionOrder:
		return "insertion"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "lowest" or "insertion" (case-insensitive) to a TieBreak.
// The empty string yields the default.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lowest":
		return TieBreakLowestValue, nil
	case "insertion":
		return TieBreakInsertionOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
	}
}

// Strategy selects how the next node to finalize is found.
type Strategy int

const (
	// StrategyScan scans every unvisited node for the minimum distance.
	StrategyScan Strategy = iota

	// StrategyHeap keeps candidates in a min-heap ordered by (distance, walk rank).
	StrategyHeap
)

// String returns the config/wire name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" or "heap" (case-insensitive) to a Strategy.
// The empty string yields the default.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scan":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Options configures a ShortestPaths call.
//
// TieBreak – walk order for tie resolution and edge emission.
// Strategy – minimum-selection strategy; does not change output.
// WeightFn – edge-weight function; must be symmetric and non-negative.
type Options struct {
	TieBreak TieBreak
	Strategy Strategy
	WeightFn weight.Func
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithTieBreak sets the tie-break walk order.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithStrategy sets the minimum-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithWeightFunc replaces the edge-weight function. A nil fn restores weight.Weight.
func WithWeightFunc(fn weight.Func) Option {
	return func(o *Options) {
		if fn == nil {
			fn = weight.Weight
		}
		o.WeightFn = fn
	}
}

// DefaultOptions returns the defaults:
//   - TieBreak: TieBreakLowestValue.
//   - Strategy: StrategyScan.
//   - WeightFn: weight.Weight.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakLowestValue,
		Strategy: StrategyScan,
		WeightFn: weight.Weight,
	}
}
