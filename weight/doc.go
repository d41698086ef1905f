// SPDX-License-Identifier: MIT

// Package weight defines the edge-weight function of the integer universe.
//
// Every pair of distinct active integers is joined by an implicit edge whose
// cost blends three number-theoretic signals:
//
//	weight(a, b) = |a − b| + gcd(a, b)/10 + lcm(a, b)/1000
//
//   - |a − b| keeps numerically close integers cheap to connect.
//   - gcd/10 penalizes shared factor structure.
//   - lcm/1000 penalizes joint magnitude.
//
// The result is symmetric, deterministic and never smaller than |a − b|.
// The float terms are summed left to right in the order above, so two calls
// with the same unordered pair always produce bit-identical values.
//
// Complexity:
//
//   - GCD/LCM: O(log min(a, b)) time, O(1) space.
//   - Weight:  O(log min(a, b)) time, O(1) space.
//
// Example:
//
//	w := weight.Weight(1, 2) // 1 + 0.1 + 0.002 = 1.102
package weight
