// Package report assembles the structured analysis report and renders its
// terminal presentation. All numbers are computed by the engine before a
// Report is built; this package only carries and formats them, so tests can
// assert on structured values instead of captured text.
package report

import (
	"github.com/google/uuid"

	"github.com/heapbench/heapbench/internal/engine"
)

// Report is the complete result of one analysis run.
type Report struct {
	// RunID uniquely identifies this report
	RunID string `json:"run_id"`

	// InputPath names the benchmark CSV the report was computed from
	InputPath string `json:"input_path"`

	// Fingerprint is the murmur3 hash of the raw input bytes
	Fingerprint string `json:"fingerprint"`

	// TrialCount is the number of raw trials loaded
	TrialCount int `json:"trial_count"`

	// SizeCount is the number of distinct input sizes
	SizeCount int `json:"size_count"`

	// Analysis holds every series the engine produced
	Analysis *engine.Analysis `json:"analysis"`
}

// New builds a Report for an analysis of the named input.
func New(inputPath, fingerprint string, trialCount int, analysis *engine.Analysis) *Report {
	return &Report{
		RunID:       uuid.New().String(),
		InputPath:   inputPath,
		Fingerprint: fingerprint,
		TrialCount:  trialCount,
		SizeCount:   len(analysis.Aggregates),
		Analysis:    analysis,
	}
}
