// SPDX-License-Identifier: MIT
// Package: orbitpath/universe
//
// types.go: domain bounds, sentinel errors and the starter seed.

package universe

import "errors"

// Domain bounds for node values.
const (
	MinNode = 1
	MaxNode = 100
)

// ErrOutOfRange indicates a node value outside [MinNode, MaxNode].
var ErrOutOfRange = errors.New("universe: node value out of range")

// starterNodes seeds a fresh universe.
var starterNodes = [...]int{1, 2, 5, 10, 42}

// StarterNodes returns a copy of the values a fresh universe starts with.
func StarterNodes() []int {
	out := make([]int, len(starterNodes))
	copy(out, starterNodes[:])

	return out
}

// Starter returns a new ActiveSet seeded with StarterNodes in order.
func Starter() *ActiveSet {
	s := NewActiveSet()
	for _, v := range starterNodes {
		s.insert(v)
	}

	return s
}

// InRange reports whether v is a valid node value.
func InRange(v int) bool { return v >= MinNode && v <= MaxNode }
