package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heapbench/heapbench/internal/engine"
	heaperrors "github.com/heapbench/heapbench/internal/errors"
)

// Series file names, matched by the rendering collaborator.
const (
	FileTimeSeries       = "time_vs_size.json"
	FileComparisonSeries = "comparisons_vs_size.json"
	FileSwapSeries       = "swaps_vs_size.json"
	FileNormalizedSeries = "complexity_verification.json"
	FileGrowthSeries     = "growth_rate_analysis.json"
	FilePerElementSeries = "operations_per_element.json"
	FileResourceSeries   = "resource_usage.json"
)

// Writer writes analysis series as JSON files into a fixed output
// directory, creating it if absent.
type Writer struct {
	// OutputDir is the directory series files are written to
	OutputDir string
}

// NewWriter creates a series writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{OutputDir: dir}
}

// WriteAll writes every series of the analysis. Returns the paths written.
func (w *Writer) WriteAll(analysis *engine.Analysis) ([]string, error) {
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return nil, heaperrors.NewExportError(
			fmt.Sprintf("failed to create output directory %s", w.OutputDir), err)
	}

	files := []struct {
		name   string
		series interface{}
	}{
		{FileTimeSeries, BuildTimeSeries(analysis)},
		{FileComparisonSeries, BuildComparisonSeries(analysis)},
		{FileSwapSeries, BuildSwapSeries(analysis)},
		{FileNormalizedSeries, BuildNormalizedSeries(analysis)},
		{FileGrowthSeries, BuildGrowthSeries(analysis)},
		{FilePerElementSeries, BuildPerElementSeries(analysis)},
		{FileResourceSeries, BuildResourceSeries(analysis)},
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(w.OutputDir, file.name)
		if err := writeJSON(path, file.series); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return heaperrors.NewExportError(fmt.Sprintf("failed to encode %s", path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return heaperrors.NewExportError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
