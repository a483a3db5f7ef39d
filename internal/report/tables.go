package report

import (
	"fmt"
	"strings"
)

const tableWidth = 80

// FormatPerformanceTable renders the per-size performance table with
// fixed-width columns: size, mean time to 3 decimals, integer comparisons,
// swaps and heapify ops, and normalized time to 6 decimals. Sizes with an
// undefined normalization show "n/a" in the last column.
func (r *Report) FormatPerformanceTable() string {
	var b strings.Builder
	rule := strings.Repeat("=", tableWidth)
	b.WriteString(rule + "\n")
	b.WriteString("PERFORMANCE SUMMARY TABLE\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-10s %-12s %-15s %-10s %-10s %-12s\n",
		"Size", "Time(ms)", "Comparisons", "Swaps", "Heapify", "Time/nlogn"))
	b.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, record := range r.Analysis.Aggregates {
		normalized := "n/a"
		if record.NormalizedDefined {
			normalized = fmt.Sprintf("%.6f", record.NormalizedTime)
		}
		b.WriteString(fmt.Sprintf("%-10d %-12.3f %-15d %-10d %-10d %-12s\n",
			record.InputSize,
			record.MeanTimeMillis,
			int64(record.MeanComparisons),
			int64(record.MeanSwaps),
			int64(record.MeanHeapifyOps),
			normalized))
	}
	return b.String()
}

// FormatComparisonTable renders the theoretical-vs-empirical comparison
// table: size, measured mean comparisons, theoretical 1.44*n*log2(n)
// prediction, and their ratio to 3 decimals.
func (r *Report) FormatComparisonTable() string {
	var b strings.Builder
	rule := strings.Repeat("=", tableWidth)
	b.WriteString(rule + "\n")
	b.WriteString("THEORETICAL VS EMPIRICAL COMPARISON\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-10s %-18s %-18s %-10s\n",
		"Size", "Measured Comps", "Theoretical", "Ratio"))
	b.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, ratio := range r.Analysis.ComparisonRatios {
		b.WriteString(fmt.Sprintf("%-10d %-18d %-18d %-10.3f\n",
			ratio.InputSize,
			int64(ratio.MeasuredComparisons),
			int64(ratio.TheoreticalComparisons),
			ratio.Ratio))
	}
	return b.String()
}

// FormatVerificationSummary renders the complexity-verification block.
func (r *Report) FormatVerificationSummary() string {
	var b strings.Builder
	rule := strings.Repeat("=", tableWidth)
	summary := r.Analysis.Summary

	b.WriteString(rule + "\n")
	b.WriteString("COMPLEXITY VERIFICATION\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Average Time/(n log n):     %.6f ms\n", summary.Mean))
	b.WriteString(fmt.Sprintf("Std Dev Time/(n log n):     %.6f ms\n", summary.StdDev))
	b.WriteString(fmt.Sprintf("Coefficient of Variation:   %.2f%%\n", summary.CVPercent))
	if summary.SampleCount == 0 {
		b.WriteString("\nNo sizes with a defined normalization; verification skipped\n")
	} else if summary.Confirmed {
		b.WriteString(fmt.Sprintf("\nCV%% below %.0f%% confirms Theta(n log n) complexity\n",
			summary.ThresholdPercent))
	} else {
		b.WriteString(fmt.Sprintf("\nCV%% of %.2f%% exceeds the %.0f%% threshold; growth does not match Theta(n log n)\n",
			summary.CVPercent, summary.ThresholdPercent))
	}
	return b.String()
}

// Render produces the full terminal report.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run %s over %s (fingerprint %s)\n", r.RunID, r.InputPath, r.Fingerprint))
	b.WriteString(fmt.Sprintf("Processed %d data points across %d input sizes\n\n", r.TrialCount, r.SizeCount))
	b.WriteString(r.FormatPerformanceTable())
	b.WriteString("\n")
	b.WriteString(r.FormatVerificationSummary())
	b.WriteString("\n")
	b.WriteString(r.FormatComparisonTable())
	return b.String()
}
