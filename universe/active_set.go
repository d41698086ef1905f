// SPDX-License-Identifier: MIT
// Package: orbitpath/universe
//
// active_set.go: ActiveSet lifecycle and queries.
//
// Concurrency:
//   - order and index are guarded by mu.
//   - Every read method returns a fresh copy.

package universe

import (
	"fmt"
	"sort"
	"sync"
)

// ActiveSet is an insertion-ordered set of unique node values.
// The zero value is not usable; construct with NewActiveSet, FromValues or Starter.
type ActiveSet struct {
	mu    sync.RWMutex
	order []int       // insertion order
	index map[int]int // value → position in order
}

// NewActiveSet returns an empty ActiveSet.
// Complexity: O(1).
func NewActiveSet() *ActiveSet {
	return &ActiveSet{index: make(map[int]int)}
}

// FromValues builds an ActiveSet from values in order, skipping duplicates.
// Returns ErrOutOfRange (wrapped with the offending value) on the first
// invalid entry; no partial set is returned in that case.
// Complexity: O(n).
func FromValues(values ...int) (*ActiveSet, error) {
	s := &ActiveSet{
		order: make([]int, 0, len(values)),
		index: make(map[int]int, len(values)),
	}
	for _, v := range values {
		if !InRange(v) {
			return nil, fmt.Errorf("FromValues: %d not in [%d,%d]: %w", v, MinNode, MaxNode, ErrOutOfRange)
		}
		s.insert(v)
	}

	return s, nil
}

// Add inserts v. It reports whether v was newly added.
// Adding a value already present is a no-op and returns (false, nil).
func (s *ActiveSet) Add(v int) (bool, error) {
	if !InRange(v) {
		return false, fmt.Errorf("Add: %d not in [%d,%d]: %w", v, MinNode, MaxNode, ErrOutOfRange)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(v), nil
}

// Remove deletes v and reports whether it was present.
// Relative order of the remaining values is preserved.
// Complexity: O(n).
func (s *ActiveSet) Remove(v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[v]
	if !ok {
		return false
	}
	copy(s.order[pos:], s.order[pos+1:])
	s.order = s.order[:len(s.order)-1]
	delete(s.index, v)
	// shift positions of everything after pos
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}

	return true
}

// Contains reports whether v is in the set.
func (s *ActiveSet) Contains(v int) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[v]

	return ok
}

// Len returns the number of values in the set. A nil set has length 0.
func (s *ActiveSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Values returns a snapshot of the set in insertion order.
// The caller owns the returned slice.
func (s *ActiveSet) Values() []int {
	if s == nil {
		return []int{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.order))
	copy(out, s.order)

	return out
}

// Sorted returns a snapshot of the set in ascending order.
func (s *ActiveSet) Sorted() []int {
	out := s.Values()
	sort.Ints(out)

	return out
}

// Clone returns an independent copy preserving insertion order.
func (s *ActiveSet) Clone() *ActiveSet {
	vals := s.Values()
	c := &ActiveSet{
		order: make([]int, 0, len(vals)),
		index: make(map[int]int, len(vals)),
	}
	for _, v := range vals {
		c.insert(v)
	}

	return c
}

// String renders the set in insertion order, e.g. "{1 2 5}".
func (s *ActiveSet) String() string {
	vals := s.Values()
	str := fmt.Sprint(vals)

	return "{" + str[1:len(str)-1] + "}"
}

// insert appends v if absent. Caller holds the write lock (or owns s exclusively).
func (s *ActiveSet) insert(v int) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)

	return true
}
