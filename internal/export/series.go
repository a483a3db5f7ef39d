// Package export writes the numeric series consumed by the external
// rendering step. Each series is a plain data file: ordered slices of
// numbers plus labels, no plotting-library types. The rendering collaborator
// reads these from a fixed output directory.
package export

import (
	"fmt"

	"github.com/heapbench/heapbench/internal/engine"
)

// TimeSeries is the measured time curve with error-bar data.
type TimeSeries struct {
	Sizes     []int     `json:"sizes"`
	MeanTimes []float64 `json:"mean_times_ms"`
	StdTimes  []float64 `json:"std_times_ms"`
}

// CurveSeries is a measured curve with its theoretical reference.
type CurveSeries struct {
	Sizes       []int     `json:"sizes"`
	Measured    []float64 `json:"measured"`
	Theoretical []float64 `json:"theoretical"`
}

// NormalizedSeries is the constant-factor convergence curve. Only sizes
// with a defined normalization appear.
type NormalizedSeries struct {
	Sizes           []int     `json:"sizes"`
	NormalizedTimes []float64 `json:"normalized_times"`
	Mean            float64   `json:"mean"`
}

// GrowthSeries holds per-transition growth ratios with display labels.
// MeasuredDefined marks entries whose measured ratio is undefined (zero
// mean time in the denominator); their theoretical ratio is still valid.
type GrowthSeries struct {
	Labels          []string  `json:"labels"`
	Measured        []float64 `json:"measured_ratios"`
	MeasuredDefined []bool    `json:"measured_defined"`
	Theoretical     []float64 `json:"theoretical_ratios"`
}

// PerElementSeries holds per-element operation counts with the theoretical
// 1.44*log2(n) reference.
type PerElementSeries struct {
	Sizes       []int     `json:"sizes"`
	Comparisons []float64 `json:"comparisons_per_element"`
	Swaps       []float64 `json:"swaps_per_element"`
	Theoretical []float64 `json:"theoretical_per_element"`
}

// ResourceSeries holds the remaining per-size means: heapify operations and
// memory usage.
type ResourceSeries struct {
	Sizes      []int     `json:"sizes"`
	HeapifyOps []float64 `json:"mean_heapify_ops"`
	MemoryKB   []float64 `json:"mean_memory_kb"`
}

// BuildTimeSeries extracts the time-vs-size series from an analysis.
func BuildTimeSeries(analysis *engine.Analysis) TimeSeries {
	var s TimeSeries
	for _, record := range analysis.Aggregates {
		s.Sizes = append(s.Sizes, record.InputSize)
		s.MeanTimes = append(s.MeanTimes, record.MeanTimeMillis)
		s.StdTimes = append(s.StdTimes, record.StdTimeMillis)
	}
	return s
}

// BuildComparisonSeries extracts measured mean comparisons against the
// 1.44*n*log2(n) prediction.
func BuildComparisonSeries(analysis *engine.Analysis) CurveSeries {
	var s CurveSeries
	for _, record := range analysis.Aggregates {
		s.Sizes = append(s.Sizes, record.InputSize)
		s.Measured = append(s.Measured, record.MeanComparisons)
		s.Theoretical = append(s.Theoretical, engine.TheoreticalComparisons(record.InputSize))
	}
	return s
}

// BuildSwapSeries extracts measured mean swaps against the n-1 prediction.
func BuildSwapSeries(analysis *engine.Analysis) CurveSeries {
	var s CurveSeries
	for _, record := range analysis.Aggregates {
		s.Sizes = append(s.Sizes, record.InputSize)
		s.Measured = append(s.Measured, record.MeanSwaps)
		s.Theoretical = append(s.Theoretical, float64(engine.TheoreticalSwaps(record.InputSize)))
	}
	return s
}

// BuildNormalizedSeries extracts the normalized-time curve, excluding sizes
// with an undefined normalization.
func BuildNormalizedSeries(analysis *engine.Analysis) NormalizedSeries {
	s := NormalizedSeries{Mean: analysis.Summary.Mean}
	for _, record := range analysis.Aggregates {
		if !record.NormalizedDefined {
			continue
		}
		s.Sizes = append(s.Sizes, record.InputSize)
		s.NormalizedTimes = append(s.NormalizedTimes, record.NormalizedTime)
	}
	return s
}

// BuildGrowthSeries extracts the growth-transition ratios with labels of
// the form "100->200".
func BuildGrowthSeries(analysis *engine.Analysis) GrowthSeries {
	var s GrowthSeries
	for _, transition := range analysis.Transitions {
		s.Labels = append(s.Labels, fmt.Sprintf("%d->%d", transition.FromSize, transition.ToSize))
		s.Measured = append(s.Measured, transition.MeasuredTimeRatio)
		s.MeasuredDefined = append(s.MeasuredDefined, transition.MeasuredDefined)
		s.Theoretical = append(s.Theoretical, transition.TheoreticalRatio)
	}
	return s
}

// BuildPerElementSeries extracts the per-element operation curves.
func BuildPerElementSeries(analysis *engine.Analysis) PerElementSeries {
	var s PerElementSeries
	for _, ops := range analysis.OpsPerElement {
		s.Sizes = append(s.Sizes, ops.InputSize)
		s.Comparisons = append(s.Comparisons, ops.ComparisonsPerElement)
		s.Swaps = append(s.Swaps, ops.SwapsPerElement)
		s.Theoretical = append(s.Theoretical, ops.TheoreticalPerElement)
	}
	return s
}

// BuildResourceSeries extracts the heapify and memory curves.
func BuildResourceSeries(analysis *engine.Analysis) ResourceSeries {
	var s ResourceSeries
	for _, record := range analysis.Aggregates {
		s.Sizes = append(s.Sizes, record.InputSize)
		s.HeapifyOps = append(s.HeapifyOps, record.MeanHeapifyOps)
		s.MemoryKB = append(s.MemoryKB, record.MeanMemoryKB)
	}
	return s
}
