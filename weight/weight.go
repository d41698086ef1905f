// SPDX-License-Identifier: MIT
// Package: orbitpath/weight
//
// weight.go: gcd/lcm primitives and the default edge-weight function.

package weight

// Divisors applied to the gcd and lcm terms of the weight.
const (
	GCDDivisor = 10.0
	LCMDivisor = 1000.0
)

// Func computes the weight of the implicit edge between two distinct nodes.
// Implementations must be symmetric and return values ≥ 0.
type Func func(a, b int) float64

// Breakdown exposes each term of Weight for a single pair.
type Breakdown struct {
	A     int     `json:"a"`
	B     int     `json:"b"`
	Diff  int     `json:"diff"`
	GCD   int     `json:"gcd"`
	LCM   int     `json:"lcm"`
	Total float64 `json:"total"`
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// remainder loop. Signs are ignored; GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
// The division happens before the multiplication to keep intermediates small.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)

	return a / GCD(a, b) * b
}

// Weight is the default Func:
//
//	|a − b| + gcd(a, b)/10 + lcm(a, b)/1000
//
// For a == b the value is still defined (gcd = lcm = a) but the engine never
// asks for it, since the implicit graph has no self-loops.
func Weight(a, b int) float64 {
	g := GCD(a, b)
	l := LCM(a, b)

	return float64(abs(a-b)) + float64(g)/GCDDivisor + float64(l)/LCMDivisor
}

// Explain returns the individual terms of Weight(a, b).
func Explain(a, b int) Breakdown {
	return Breakdown{
		A:     a,
		B:     b,
		Diff:  abs(a - b),
		GCD:   GCD(a, b),
		LCM:   LCM(a, b),
		Total: Weight(a, b),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
