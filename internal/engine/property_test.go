package engine

import (
	"math"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/heapbench/heapbench/pkg/types"
)

// TestProperty_GroupingInvariants validates the grouping contract: for any
// non-empty trial set, aggregation yields exactly one record per distinct
// input size, in strictly ascending size order, and no trial is omitted or
// double-counted.
func TestProperty_GroupingInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("one record per distinct size, strictly ascending", prop.ForAll(
		func(sizes []int) bool {
			if len(sizes) == 0 {
				return true
			}
			trials := make([]types.Trial, len(sizes))
			for i, size := range sizes {
				trials[i] = types.Trial{InputSize: size, TimeMillis: float64(i + 1)}
			}

			e := &Engine{CVThresholdPercent: 15}
			records, err := e.GroupAndAggregate(trials)
			if err != nil {
				return false
			}

			distinct := make(map[int]bool)
			for _, size := range sizes {
				distinct[size] = true
			}
			if len(records) != len(distinct) {
				return false
			}
			for i := 1; i < len(records); i++ {
				if records[i-1].InputSize >= records[i].InputSize {
					return false
				}
			}

			// Every trial counted exactly once.
			total := 0
			for _, record := range records {
				total += record.TrialCount
			}
			return total == len(trials)
		},
		gen.SliceOf(gen.IntRange(2, 5000)),
	))

	properties.Property("group mean time is bounded by group min and max", prop.ForAll(
		func(times []float64) bool {
			if len(times) == 0 {
				return true
			}
			trials := make([]types.Trial, len(times))
			for i, timeMillis := range times {
				trials[i] = types.Trial{InputSize: 100, TimeMillis: timeMillis}
			}

			e := &Engine{CVThresholdPercent: 15}
			records, err := e.GroupAndAggregate(trials)
			if err != nil || len(records) != 1 {
				return false
			}

			sorted := append([]float64(nil), times...)
			sort.Float64s(sorted)
			m := records[0].MeanTimeMillis
			const eps = 1e-9
			return m >= sorted[0]-eps && m <= sorted[len(sorted)-1]+eps
		},
		gen.SliceOf(gen.Float64Range(0.0001, 100000)),
	))

	properties.TestingRun(t)
}

// TestProperty_TheoreticalSwapsIdentity validates the n-1 swap model over
// the whole integer range of interest.
func TestProperty_TheoreticalSwapsIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("TheoreticalSwaps(n) == n-1 for n >= 1", prop.ForAll(
		func(n int) bool {
			return TheoreticalSwaps(n) == int64(n)-1
		},
		gen.IntRange(1, 10_000_000),
	))

	properties.TestingRun(t)
}

// TestProperty_NormalizedTimeFormula validates that for n > 1 the
// normalized time equals mean_time / (n * log2(n)) within tolerance, and
// that n <= 1 is always excluded.
func TestProperty_NormalizedTimeFormula(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("normalized time matches the formula for n > 1", prop.ForAll(
		func(n int, timeMillis float64) bool {
			e := &Engine{CVThresholdPercent: 15}
			records, err := e.GroupAndAggregate([]types.Trial{
				{InputSize: n, TimeMillis: timeMillis},
			})
			if err != nil || len(records) != 1 {
				return false
			}
			record := records[0]
			if !record.NormalizedDefined {
				return false
			}
			want := timeMillis / (float64(n) * math.Log2(float64(n)))
			return math.Abs(record.NormalizedTime-want) <= 1e-9*math.Abs(want)
		},
		gen.IntRange(2, 1_000_000),
		gen.Float64Range(0.0001, 100000),
	))

	properties.Property("n <= 1 is never normalized", prop.ForAll(
		func(n int) bool {
			e := &Engine{CVThresholdPercent: 15}
			records, err := e.GroupAndAggregate([]types.Trial{
				{InputSize: n, TimeMillis: 1.0},
			})
			if err != nil || len(records) != 1 {
				return false
			}
			return !records[0].NormalizedDefined
		},
		gen.IntRange(0, 1),
	))

	properties.TestingRun(t)
}

// TestProperty_CVScaleInvariance validates that multiplying all time values
// by a positive constant leaves the coefficient of variation unchanged.
func TestProperty_CVScaleInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("CV is invariant under positive scaling of times", prop.ForAll(
		func(times []float64, scale float64) bool {
			if len(times) < 2 {
				return true
			}
			// One trial per distinct size so every record is normalized.
			base := make([]types.Trial, len(times))
			scaled := make([]types.Trial, len(times))
			for i, timeMillis := range times {
				size := 100 * (i + 1)
				base[i] = types.Trial{InputSize: size, TimeMillis: timeMillis}
				scaled[i] = types.Trial{InputSize: size, TimeMillis: timeMillis * scale}
			}

			e := &Engine{CVThresholdPercent: 15}
			baseRecords, err := e.GroupAndAggregate(base)
			if err != nil {
				return false
			}
			scaledRecords, err := e.GroupAndAggregate(scaled)
			if err != nil {
				return false
			}

			baseSummary := VerifySummary(baseRecords, 15)
			scaledSummary := VerifySummary(scaledRecords, 15)
			return math.Abs(baseSummary.CVPercent-scaledSummary.CVPercent) <= 1e-6
		},
		gen.SliceOf(gen.Float64Range(0.001, 1000)),
		gen.Float64Range(0.001, 1000),
	))

	properties.TestingRun(t)
}
