// SPDX-License-Identifier: MIT

// Package universe holds the Active Set: the integers currently placed in the
// universe and eligible to take part in a shortest-path network.
//
// A node is a positive integer in [MinNode, MaxNode]. Its identity is its
// value, so the same integer keys cosmetic metadata in the display layer and
// distances in the engine.
//
// ActiveSet guarantees:
//   - Uniqueness: adding a present value is a no-op.
//   - Range: values outside [MinNode, MaxNode] are rejected with ErrOutOfRange.
//   - Order: Values() returns insertion order; Sorted() returns ascending order.
//   - Concurrency: all methods are safe for concurrent use; readers receive
//     copies, never the backing slice.
//
// The set may grow and shrink over a session. Consumers must not assume
// monotonic growth.
//
// Example:
//
//	set := universe.Starter()   // {1, 2, 5, 10, 42}
//	_, _ = set.Add(7)
//	fmt.Println(set.Sorted())   // [1 2 5 7 10 42]
package universe
