package engine

import (
	heaperrors "github.com/heapbench/heapbench/internal/errors"
	"github.com/heapbench/heapbench/pkg/types"
)

// GrowthTransitions computes the measured and theoretical growth ratios for
// each adjacent pair in the ascending unique-size ordering. Fewer than two
// aggregates yield an empty result.
//
// Equal adjacent sizes violate the grouping invariant and fail with
// DEGENERATE_SIZE, as does a size <= 1 in a transition's denominator;
// callers exclude flagged sizes before computing transitions. A zero mean
// time in the denominator makes only the measured ratio undefined: the
// transition is still emitted with its theoretical ratio, and
// MeasuredDefined is false.
func GrowthTransitions(aggregates []types.AggregateRecord) ([]types.GrowthTransition, error) {
	if len(aggregates) < 2 {
		return nil, nil
	}

	transitions := make([]types.GrowthTransition, 0, len(aggregates)-1)
	for i := 1; i < len(aggregates); i++ {
		from, to := aggregates[i-1], aggregates[i]

		if from.InputSize == to.InputSize {
			return nil, heaperrors.NewDegenerateSizeError(from.InputSize, to.InputSize)
		}
		if from.InputSize <= 1 {
			return nil, heaperrors.NewDegenerateSizeError(from.InputSize, to.InputSize)
		}

		transition := types.GrowthTransition{
			FromSize:         from.InputSize,
			ToSize:           to.InputSize,
			TheoreticalRatio: SizeLog(to.InputSize) / SizeLog(from.InputSize),
		}
		if from.MeanTimeMillis != 0 {
			transition.MeasuredTimeRatio = to.MeanTimeMillis / from.MeanTimeMillis
			transition.MeasuredDefined = true
		}
		transitions = append(transitions, transition)
	}
	return transitions, nil
}
