// Package similarity implements the five sub-metrics of the affinity quotient.
//
// Every calculator is a pure, total function over two normalized names.
// Empty names never cause an error here: each metric returns a defined
// sentinel instead, so the metrics can be exercised in isolation. The
// stricter non-empty contract is enforced by the aggregator.
//
// All scores are in [0,100] and rounded to one decimal place.
package similarity

import "math"

// Round1 rounds x to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// percent scales a similarity in [0,1] to a rounded score in [0,100].
func percent(similarity float64) float64 {
	return Round1(Clamp(similarity*100, 0, 100))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
