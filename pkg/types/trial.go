// Package types provides core data types for Heapbench.
package types

// Trial represents a single raw benchmark measurement of the heap sort
// implementation at a given input size. Trials are immutable once loaded.
type Trial struct {
	// InputSize is the number of elements sorted in this trial
	InputSize int `json:"input_size"`

	// TimeMillis is the measured wall-clock sort time in milliseconds
	TimeMillis float64 `json:"time_millis"`

	// Comparisons is the number of element comparisons performed
	Comparisons int64 `json:"comparisons"`

	// Swaps is the number of element swaps performed
	Swaps int64 `json:"swaps"`

	// HeapifyOps is the number of heap-restructuring operations performed
	HeapifyOps int64 `json:"heapify_ops"`

	// MemoryKB is the peak additional memory used, in kilobytes
	MemoryKB int64 `json:"memory_kb"`
}

// AggregateRecord holds per-input-size summary statistics over all trials
// sharing that size. Records are always ordered by ascending InputSize.
type AggregateRecord struct {
	// InputSize is the grouping key
	InputSize int `json:"input_size"`

	// TrialCount is the number of trials aggregated into this record
	TrialCount int `json:"trial_count"`

	// MeanTimeMillis is the arithmetic mean of TimeMillis over the group
	MeanTimeMillis float64 `json:"mean_time_millis"`

	// StdTimeMillis is the population standard deviation of TimeMillis
	StdTimeMillis float64 `json:"std_time_millis"`

	// MeanComparisons is the mean comparison count over the group
	MeanComparisons float64 `json:"mean_comparisons"`

	// MeanSwaps is the mean swap count over the group
	MeanSwaps float64 `json:"mean_swaps"`

	// MeanHeapifyOps is the mean heapify-operation count over the group
	MeanHeapifyOps float64 `json:"mean_heapify_ops"`

	// MeanMemoryKB is the mean memory usage over the group
	MeanMemoryKB float64 `json:"mean_memory_kb"`

	// NormalizedTime is MeanTimeMillis / (n * log2(n)), the constant-factor
	// convergence metric. Undefined (and excluded from verification) when
	// InputSize <= 1; check NormalizedDefined before using it.
	NormalizedTime float64 `json:"normalized_time"`

	// NormalizedDefined is false for sizes where n*log2(n) has no meaning
	NormalizedDefined bool `json:"normalized_defined"`
}

// GrowthTransition captures the growth ratio between two consecutive
// distinct input sizes in the ascending size ordering.
type GrowthTransition struct {
	// FromSize is the smaller input size of the pair
	FromSize int `json:"from_size"`

	// ToSize is the larger input size of the pair
	ToSize int `json:"to_size"`

	// MeasuredTimeRatio is mean_time[to] / mean_time[from]. Undefined when
	// the denominator mean time is zero; check MeasuredDefined before
	// using it.
	MeasuredTimeRatio float64 `json:"measured_time_ratio"`

	// MeasuredDefined is false when a zero mean time in the denominator
	// leaves the measured ratio undefined. The theoretical ratio is always
	// defined.
	MeasuredDefined bool `json:"measured_defined"`

	// TheoreticalRatio is (to*log2(to)) / (from*log2(from))
	TheoreticalRatio float64 `json:"theoretical_ratio"`
}

// VerificationSummary is the complexity-verification result computed over
// the defined normalized-time values of all aggregate records.
type VerificationSummary struct {
	// Mean is the mean of normalized time across sizes
	Mean float64 `json:"mean"`

	// StdDev is the population standard deviation of normalized time
	StdDev float64 `json:"std_dev"`

	// CVPercent is the coefficient of variation, StdDev/Mean * 100
	CVPercent float64 `json:"cv_percent"`

	// ThresholdPercent is the CV threshold the summary was judged against
	ThresholdPercent float64 `json:"threshold_percent"`

	// Confirmed reports whether CVPercent is below ThresholdPercent.
	// This is a reporting convention, not a statistical hypothesis test.
	Confirmed bool `json:"confirmed"`

	// SampleCount is the number of sizes with a defined normalized time
	SampleCount int `json:"sample_count"`
}

// OpsPerElement holds per-size per-element operation counts, compared
// against the theoretical 1.44*log2(n) curve.
type OpsPerElement struct {
	// InputSize is the grouping key
	InputSize int `json:"input_size"`

	// ComparisonsPerElement is mean_comparisons / n
	ComparisonsPerElement float64 `json:"comparisons_per_element"`

	// SwapsPerElement is mean_swaps / n
	SwapsPerElement float64 `json:"swaps_per_element"`

	// TheoreticalPerElement is 1.44 * log2(n), zero when n <= 1
	TheoreticalPerElement float64 `json:"theoretical_per_element"`
}

// ComparisonRatio holds the per-size ratio of measured mean comparisons to
// the theoretical 1.44*n*log2(n) prediction.
type ComparisonRatio struct {
	// InputSize is the grouping key
	InputSize int `json:"input_size"`

	// MeasuredComparisons is the group's mean comparison count
	MeasuredComparisons float64 `json:"measured_comparisons"`

	// TheoreticalComparisons is 1.44 * n * log2(n)
	TheoreticalComparisons float64 `json:"theoretical_comparisons"`

	// Ratio is MeasuredComparisons / TheoreticalComparisons. Zero when the
	// theoretical count is zero (n <= 1).
	Ratio float64 `json:"ratio"`
}
