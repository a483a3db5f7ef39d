package engine

import "math"

// ComparisonConstant approximates the leading constant of heap construction
// plus extraction comparison counts, about 1/ln(2). It is a fixed modeling
// constant, not fitted from the data.
const ComparisonConstant = 1.44

// SizeLog returns n * log2(n), the Theta(n log n) operation-count model.
// Returns 0 for n <= 1, where the model is undefined.
func SizeLog(n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(n) * math.Log2(float64(n))
}

// TheoreticalComparisons returns the predicted comparison count for sorting
// n elements: 1.44 * n * log2(n). Returns 0 for n <= 1.
func TheoreticalComparisons(n int) float64 {
	return ComparisonConstant * SizeLog(n)
}

// TheoreticalSwaps returns the predicted swap count for sorting n elements:
// n - 1, one swap per extraction step. Returns 0 for n = 0.
func TheoreticalSwaps(n int) int64 {
	if n < 1 {
		return 0
	}
	return int64(n) - 1
}

// TheoreticalPerElement returns the predicted per-element comparison count,
// 1.44 * log2(n). Returns 0 for n <= 1.
func TheoreticalPerElement(n int) float64 {
	if n <= 1 {
		return 0
	}
	return ComparisonConstant * math.Log2(float64(n))
}
