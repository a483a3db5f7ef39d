// Package loader parses tabular benchmark output into Trial records.
//
// The input is a CSV stream with a header row naming the columns
// InputSize, TimeMillis, Comparisons, Swaps, HeapifyOps and MemoryKB.
// The loader performs type coercion only; it does no aggregation and no
// validation of value ranges.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"

	heaperrors "github.com/heapbench/heapbench/internal/errors"
	"github.com/heapbench/heapbench/pkg/types"
)

// Required column names, as emitted by the benchmark runner.
const (
	ColInputSize   = "InputSize"
	ColTimeMillis  = "TimeMillis"
	ColComparisons = "Comparisons"
	ColSwaps       = "Swaps"
	ColHeapifyOps  = "HeapifyOps"
	ColMemoryKB    = "MemoryKB"
)

var requiredColumns = []string{
	ColInputSize, ColTimeMillis, ColComparisons, ColSwaps, ColHeapifyOps, ColMemoryKB,
}

// Dataset is the result of loading one benchmark CSV: the ordered trial
// sequence plus a fingerprint of the raw input bytes so reports can be
// correlated with the exact dataset they were computed from.
type Dataset struct {
	// Trials preserves the input row order
	Trials []types.Trial

	// Fingerprint is the murmur3 128-bit hash of the raw input, hex encoded
	Fingerprint string
}

// Load parses trials from a CSV stream. A missing or incomplete header row
// fails with MISSING_HEADER; a data row with a missing field or a failed
// numeric coercion fails with MALFORMED_ROW carrying the 1-based data row
// index. Input order is preserved.
func Load(r io.Reader) (*Dataset, error) {
	h := murmur3.New128()
	cr := csv.NewReader(io.TeeReader(r, h))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, heaperrors.New(heaperrors.ErrCategoryLoader, heaperrors.CodeMissingHeader,
			"input is empty, expected a header row")
	}
	if err != nil {
		return nil, heaperrors.Wrap(heaperrors.ErrCategoryLoader, heaperrors.CodeMissingHeader,
			"failed to read header row", err)
	}

	colIndex, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var trials []types.Trial
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, heaperrors.NewMalformedRowError(row, "", "failed to parse row", err)
		}

		trial, err := parseTrial(record, colIndex, row)
		if err != nil {
			return nil, err
		}
		trials = append(trials, trial)
	}

	h1, h2 := h.Sum128()
	return &Dataset{
		Trials:      trials,
		Fingerprint: fmt.Sprintf("%016x%016x", h1, h2),
	}, nil
}

// LoadFile opens and parses a benchmark CSV file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, heaperrors.Wrap(heaperrors.ErrCategoryLoader, heaperrors.CodeMissingHeader,
			fmt.Sprintf("failed to open input file %s", path), err)
	}
	defer f.Close()
	return Load(f)
}

// resolveColumns maps each required column name to its index in the header.
func resolveColumns(header []string) (map[string]int, error) {
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, heaperrors.New(heaperrors.ErrCategoryLoader, heaperrors.CodeMissingHeader,
				fmt.Sprintf("header is missing required column %s", col))
		}
	}
	return colIndex, nil
}

// parseTrial coerces one CSV record into a Trial. row is the 1-based data
// row index used in error reporting.
func parseTrial(record []string, colIndex map[string]int, row int) (types.Trial, error) {
	var trial types.Trial

	size, err := parseIntField(record, colIndex, ColInputSize, row)
	if err != nil {
		return trial, err
	}
	trial.InputSize = int(size)

	timeMillis, err := parseFloatField(record, colIndex, ColTimeMillis, row)
	if err != nil {
		return trial, err
	}
	trial.TimeMillis = timeMillis

	if trial.Comparisons, err = parseIntField(record, colIndex, ColComparisons, row); err != nil {
		return trial, err
	}
	if trial.Swaps, err = parseIntField(record, colIndex, ColSwaps, row); err != nil {
		return trial, err
	}
	if trial.HeapifyOps, err = parseIntField(record, colIndex, ColHeapifyOps, row); err != nil {
		return trial, err
	}
	if trial.MemoryKB, err = parseIntField(record, colIndex, ColMemoryKB, row); err != nil {
		return trial, err
	}

	return trial, nil
}

func fieldValue(record []string, colIndex map[string]int, col string, row int) (string, error) {
	idx := colIndex[col]
	if idx >= len(record) {
		return "", heaperrors.NewMalformedRowError(row, col, "field is missing", nil)
	}
	return strings.TrimSpace(record[idx]), nil
}

func parseIntField(record []string, colIndex map[string]int, col string, row int) (int64, error) {
	s, err := fieldValue(record, colIndex, col, row)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, heaperrors.NewMalformedRowError(row, col,
			fmt.Sprintf("expected integer, got %q", s), err)
	}
	return v, nil
}

func parseFloatField(record []string, colIndex map[string]int, col string, row int) (float64, error) {
	s, err := fieldValue(record, colIndex, col, row)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, heaperrors.NewMalformedRowError(row, col,
			fmt.Sprintf("expected number, got %q", s), err)
	}
	return v, nil
}
