package engine

import "github.com/heapbench/heapbench/pkg/types"

// VerifySummary computes the complexity-verification summary over the
// defined normalized-time values of the given aggregates. Sizes with an
// undefined normalization (n <= 1) are excluded. The coefficient of
// variation is StdDev/Mean * 100; Confirmed reports whether it falls below
// thresholdPercent. A low CV indicates the measured times track the
// n*log2(n) model with a near-constant factor; this is a reporting
// convention, not a statistical test.
func VerifySummary(aggregates []types.AggregateRecord, thresholdPercent float64) types.VerificationSummary {
	var normalized []float64
	for _, record := range aggregates {
		if record.NormalizedDefined {
			normalized = append(normalized, record.NormalizedTime)
		}
	}

	summary := types.VerificationSummary{
		ThresholdPercent: thresholdPercent,
		SampleCount:      len(normalized),
	}
	if len(normalized) == 0 {
		return summary
	}

	summary.Mean = mean(normalized)
	summary.StdDev = popStdDev(normalized)
	if summary.Mean != 0 {
		summary.CVPercent = summary.StdDev / summary.Mean * 100
		summary.Confirmed = summary.CVPercent < thresholdPercent
	}
	return summary
}

// OperationsPerElement computes per-element comparison and swap counts for
// each aggregate, alongside the theoretical 1.44*log2(n) reference. Sizes
// of zero elements are skipped, since a per-element count has no meaning
// there.
func OperationsPerElement(aggregates []types.AggregateRecord) []types.OpsPerElement {
	ops := make([]types.OpsPerElement, 0, len(aggregates))
	for _, record := range aggregates {
		if record.InputSize <= 0 {
			continue
		}
		n := float64(record.InputSize)
		ops = append(ops, types.OpsPerElement{
			InputSize:             record.InputSize,
			ComparisonsPerElement: record.MeanComparisons / n,
			SwapsPerElement:       record.MeanSwaps / n,
			TheoreticalPerElement: TheoreticalPerElement(record.InputSize),
		})
	}
	return ops
}

// ComparisonRatios computes the per-size ratio of measured mean comparisons
// to the theoretical 1.44*n*log2(n) prediction. The ratio is left at zero
// for sizes where the theoretical count is zero (n <= 1).
func ComparisonRatios(aggregates []types.AggregateRecord) []types.ComparisonRatio {
	ratios := make([]types.ComparisonRatio, 0, len(aggregates))
	for _, record := range aggregates {
		ratio := types.ComparisonRatio{
			InputSize:              record.InputSize,
			MeasuredComparisons:    record.MeanComparisons,
			TheoreticalComparisons: TheoreticalComparisons(record.InputSize),
		}
		if ratio.TheoreticalComparisons > 0 {
			ratio.Ratio = ratio.MeasuredComparisons / ratio.TheoreticalComparisons
		}
		ratios = append(ratios, ratio)
	}
	return ratios
}
