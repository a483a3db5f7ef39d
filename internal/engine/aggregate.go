// Package engine implements the aggregation and complexity-verification
// core. It transforms an ordered trial sequence into per-size aggregate
// records, growth transitions between consecutive sizes, and a
// coefficient-of-variation summary testing constant-factor convergence of
// the measured times against the Theta(n log n) model.
//
// All operations are pure functions over in-memory slices; the engine
// performs no I/O.
package engine

import (
	"math"
	"sort"
	"sync"

	heaperrors "github.com/heapbench/heapbench/internal/errors"
	"github.com/heapbench/heapbench/pkg/types"
)

// Engine computes aggregates and verification metrics over trial sets.
type Engine struct {
	// Concurrency is the number of workers used for per-size aggregation.
	// Values <= 1 select the sequential path.
	Concurrency int

	// CVThresholdPercent is the coefficient-of-variation threshold the
	// verification summary is judged against.
	CVThresholdPercent float64
}

// Analysis holds every series the engine produces for one trial set. The
// report and export layers consume this; no computation happens past it.
type Analysis struct {
	Aggregates       []types.AggregateRecord
	Transitions      []types.GrowthTransition
	Summary          types.VerificationSummary
	OpsPerElement    []types.OpsPerElement
	ComparisonRatios []types.ComparisonRatio
}

// Analyze runs the full pipeline: grouping, aggregation, growth transitions
// and the complexity-verification summary.
func (e *Engine) Analyze(trials []types.Trial) (*Analysis, error) {
	aggregates, err := e.GroupAndAggregate(trials)
	if err != nil {
		return nil, err
	}

	transitions, err := GrowthTransitions(transitionAggregates(aggregates))
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Aggregates:       aggregates,
		Transitions:      transitions,
		Summary:          VerifySummary(aggregates, e.CVThresholdPercent),
		OpsPerElement:    OperationsPerElement(aggregates),
		ComparisonRatios: ComparisonRatios(aggregates),
	}, nil
}

// transitionAggregates filters out sizes excluded from log-based metrics
// (n <= 1) so one degenerate size does not prevent reporting growth on the
// rest. GrowthTransitions itself still rejects such sizes when handed them
// directly, since that means the caller skipped this exclusion.
func transitionAggregates(aggregates []types.AggregateRecord) []types.AggregateRecord {
	filtered := make([]types.AggregateRecord, 0, len(aggregates))
	for _, record := range aggregates {
		if record.InputSize <= 1 {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// GroupAndAggregate groups trials by input size and computes one
// AggregateRecord per distinct size, ordered by ascending size. Empty input
// yields an empty result. Every trial contributes to exactly one group.
func (e *Engine) GroupAndAggregate(trials []types.Trial) ([]types.AggregateRecord, error) {
	groups := make(map[int][]types.Trial)
	for _, trial := range trials {
		groups[trial.InputSize] = append(groups[trial.InputSize], trial)
	}

	sizes := make([]int, 0, len(groups))
	for size := range groups {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	if e.Concurrency > 1 && len(sizes) > 1 {
		return aggregateConcurrent(sizes, groups, e.Concurrency)
	}

	records := make([]types.AggregateRecord, 0, len(sizes))
	for _, size := range sizes {
		record, err := aggregateGroup(size, groups[size])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// aggregateConcurrent fans per-size aggregation out over a bounded worker
// count. Groups are disjoint, so workers share nothing; each writes its own
// slot. The result is re-sorted by ascending size before return, since
// groups may complete out of order.
func aggregateConcurrent(sizes []int, groups map[int][]types.Trial, workers int) ([]types.AggregateRecord, error) {
	if workers > len(sizes) {
		workers = len(sizes)
	}

	records := make([]types.AggregateRecord, len(sizes))
	errs := make([]error, len(sizes))
	work := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				records[i], errs[i] = aggregateGroup(sizes[i], groups[sizes[i]])
			}
		}()
	}
	for i := range sizes {
		work <- i
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].InputSize < records[j].InputSize
	})
	return records, nil
}

// aggregateGroup computes the aggregate record for a single size group.
func aggregateGroup(size int, group []types.Trial) (types.AggregateRecord, error) {
	if len(group) == 0 {
		return types.AggregateRecord{}, heaperrors.NewEmptyGroupError(size)
	}

	times := make([]float64, len(group))
	var sumComparisons, sumSwaps, sumHeapify, sumMemory float64
	for i, trial := range group {
		times[i] = trial.TimeMillis
		sumComparisons += float64(trial.Comparisons)
		sumSwaps += float64(trial.Swaps)
		sumHeapify += float64(trial.HeapifyOps)
		sumMemory += float64(trial.MemoryKB)
	}

	n := float64(len(group))
	record := types.AggregateRecord{
		InputSize:       size,
		TrialCount:      len(group),
		MeanTimeMillis:  mean(times),
		StdTimeMillis:   popStdDev(times),
		MeanComparisons: sumComparisons / n,
		MeanSwaps:       sumSwaps / n,
		MeanHeapifyOps:  sumHeapify / n,
		MeanMemoryKB:    sumMemory / n,
	}

	// Normalized time is undefined for sizes where n*log2(n) is zero or
	// negative. Those sizes are flagged and excluded from verification
	// rather than aborting the run.
	if nl := SizeLog(size); nl > 0 {
		record.NormalizedTime = record.MeanTimeMillis / nl
		record.NormalizedDefined = true
	}

	return record, nil
}

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStdDev returns the population standard deviation (divide by N, not
// N-1) of values. A single-element slice yields 0.
func popStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
