package engine

import (
	"math"
	"testing"

	"github.com/heapbench/heapbench/pkg/types"
)

// normalizedRecord builds an aggregate with a defined normalized time.
func normalizedRecord(size int, normalized float64) types.AggregateRecord {
	return types.AggregateRecord{
		InputSize:         size,
		TrialCount:        1,
		NormalizedTime:    normalized,
		NormalizedDefined: true,
	}
}

func TestVerifySummary_Empty(t *testing.T) {
	summary := VerifySummary(nil, 15)
	if summary.SampleCount != 0 {
		t.Errorf("sample count = %d, want 0", summary.SampleCount)
	}
	if summary.Confirmed {
		t.Error("empty summary must not confirm anything")
	}
}

func TestVerifySummary_ExcludesUndefinedEntries(t *testing.T) {
	aggregates := []types.AggregateRecord{
		{InputSize: 1, TrialCount: 1}, // undefined normalization
		normalizedRecord(100, 0.002),
		normalizedRecord(1000, 0.002),
	}
	summary := VerifySummary(aggregates, 15)
	if summary.SampleCount != 2 {
		t.Errorf("sample count = %d, want 2 (undefined entry excluded)", summary.SampleCount)
	}
	if !almostEqual(summary.Mean, 0.002) {
		t.Errorf("mean = %v, want 0.002", summary.Mean)
	}
	if summary.CVPercent != 0 {
		t.Errorf("CV of identical values = %v, want 0", summary.CVPercent)
	}
	if !summary.Confirmed {
		t.Error("zero CV must confirm the complexity claim")
	}
}

func TestVerifySummary_CVComputation(t *testing.T) {
	// Values 1 and 3: mean 2, population std dev 1, CV 50%.
	aggregates := []types.AggregateRecord{
		normalizedRecord(100, 1),
		normalizedRecord(1000, 3),
	}
	summary := VerifySummary(aggregates, 15)
	if !almostEqual(summary.Mean, 2) {
		t.Errorf("mean = %v, want 2", summary.Mean)
	}
	if !almostEqual(summary.StdDev, 1) {
		t.Errorf("std dev = %v, want 1", summary.StdDev)
	}
	if !almostEqual(summary.CVPercent, 50) {
		t.Errorf("CV = %v, want 50", summary.CVPercent)
	}
	if summary.Confirmed {
		t.Error("CV of 50%% must not confirm against a 15%% threshold")
	}
}

func TestVerifySummary_ThresholdBoundary(t *testing.T) {
	// CV is exactly 50%; the threshold comparison is strict.
	aggregates := []types.AggregateRecord{
		normalizedRecord(100, 1),
		normalizedRecord(1000, 3),
	}

	tests := []struct {
		threshold float64
		confirmed bool
	}{
		{49.999, false},
		{50.0, false},
		{50.001, true},
	}
	for _, tt := range tests {
		summary := VerifySummary(aggregates, tt.threshold)
		if summary.Confirmed != tt.confirmed {
			t.Errorf("threshold %v: confirmed = %v, want %v", tt.threshold, summary.Confirmed, tt.confirmed)
		}
		if summary.ThresholdPercent != tt.threshold {
			t.Errorf("summary threshold = %v, want %v", summary.ThresholdPercent, tt.threshold)
		}
	}
}

func TestVerifySummary_ScaleInvariance(t *testing.T) {
	base := []types.AggregateRecord{
		normalizedRecord(100, 0.0021),
		normalizedRecord(1000, 0.0019),
		normalizedRecord(10000, 0.0020),
	}
	scaled := make([]types.AggregateRecord, len(base))
	for i, record := range base {
		record.NormalizedTime *= 1000
		scaled[i] = record
	}

	baseSummary := VerifySummary(base, 15)
	scaledSummary := VerifySummary(scaled, 15)
	if math.Abs(baseSummary.CVPercent-scaledSummary.CVPercent) > 1e-6 {
		t.Errorf("CV not scale invariant: %v vs %v", baseSummary.CVPercent, scaledSummary.CVPercent)
	}
}

func TestOperationsPerElement(t *testing.T) {
	aggregates := []types.AggregateRecord{
		{InputSize: 100, TrialCount: 1, MeanComparisons: 1100, MeanSwaps: 99},
		{InputSize: 0, TrialCount: 1},
	}
	ops := OperationsPerElement(aggregates)
	if len(ops) != 1 {
		t.Fatalf("expected 1 entry (n=0 skipped), got %d", len(ops))
	}
	if !almostEqual(ops[0].ComparisonsPerElement, 11) {
		t.Errorf("comparisons per element = %v, want 11", ops[0].ComparisonsPerElement)
	}
	if !almostEqual(ops[0].SwapsPerElement, 0.99) {
		t.Errorf("swaps per element = %v, want 0.99", ops[0].SwapsPerElement)
	}
	if !almostEqual(ops[0].TheoreticalPerElement, 1.44*math.Log2(100)) {
		t.Errorf("theoretical per element = %v, want %v", ops[0].TheoreticalPerElement, 1.44*math.Log2(100))
	}
}

func TestComparisonRatios(t *testing.T) {
	aggregates := []types.AggregateRecord{
		{InputSize: 1, TrialCount: 1, MeanComparisons: 5},
		{InputSize: 1000, TrialCount: 1, MeanComparisons: 14000},
	}
	ratios := ComparisonRatios(aggregates)
	if len(ratios) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ratios))
	}
	if ratios[0].Ratio != 0 {
		t.Errorf("ratio for n=1 should be left at 0, got %v", ratios[0].Ratio)
	}
	wantRatio := 14000 / (1.44 * 1000 * math.Log2(1000))
	if !almostEqual(ratios[1].Ratio, wantRatio) {
		t.Errorf("ratio for n=1000 = %v, want %v", ratios[1].Ratio, wantRatio)
	}
}
