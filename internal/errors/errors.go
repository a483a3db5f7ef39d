// Package errors provides structured error types for the Heapbench system.
// All errors include a category, code, and message for consistent error
// handling across components. The computation is deterministic and pure, so
// no error in this system is retryable.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by system component.
type ErrorCategory string

const (
	ErrCategoryLoader   ErrorCategory = "LOADER"
	ErrCategoryEngine   ErrorCategory = "ENGINE"
	ErrCategoryExport   ErrorCategory = "EXPORT"
	ErrCategoryInternal ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Loader codes
	CodeMalformedRow  = "MALFORMED_ROW"
	CodeMissingHeader = "MISSING_HEADER"

	// Engine codes
	CodeEmptyGroup             = "EMPTY_GROUP"
	CodeDegenerateSize         = "DEGENERATE_SIZE"
	CodeUndefinedNormalization = "UNDEFINED_NORMALIZATION"

	// Export codes
	CodeExportFailed = "EXPORT_FAILED"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// HeapbenchError is the structured error type used throughout the system.
type HeapbenchError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Details  map[string]interface{}
	Cause    error
}

// Error returns a formatted error string.
func (e *HeapbenchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *HeapbenchError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *HeapbenchError) Is(target error) bool {
	var t *HeapbenchError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new HeapbenchError.
func New(category ErrorCategory, code, message string) *HeapbenchError {
	return &HeapbenchError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Wrap creates a new HeapbenchError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *HeapbenchError {
	return &HeapbenchError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *HeapbenchError) WithDetails(details map[string]interface{}) *HeapbenchError {
	cp := *e
	cp.Details = details
	return &cp
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a HeapbenchError.
func GetCategory(err error) ErrorCategory {
	var he *HeapbenchError
	if errors.As(err, &he) {
		return he.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a HeapbenchError.
func GetCode(err error) string {
	var he *HeapbenchError
	if errors.As(err, &he) {
		return he.Code
	}
	return ""
}

// Convenience constructors for common errors.

// NewMalformedRowError reports a loader row that failed field presence or
// numeric coercion. row is the 1-based data row index (header excluded).
func NewMalformedRowError(row int, field, message string, cause error) *HeapbenchError {
	e := Wrap(ErrCategoryLoader, CodeMalformedRow,
		fmt.Sprintf("row %d: field %s: %s", row, field, message), cause)
	return e.WithDetails(map[string]interface{}{"row": row, "field": field})
}

// NewEmptyGroupError reports a size key that maps to zero trials.
// Structurally impossible under correct grouping; treated as fatal.
func NewEmptyGroupError(size int) *HeapbenchError {
	e := New(ErrCategoryEngine, CodeEmptyGroup,
		fmt.Sprintf("input size %d has no trials", size))
	return e.WithDetails(map[string]interface{}{"size": size})
}

// NewDegenerateSizeError reports an invalid adjacent size pair in a growth
// transition (equal sizes, or a size <= 1 in the denominator).
func NewDegenerateSizeError(from, to int) *HeapbenchError {
	e := New(ErrCategoryEngine, CodeDegenerateSize,
		fmt.Sprintf("degenerate size transition %d -> %d", from, to))
	return e.WithDetails(map[string]interface{}{"from": from, "to": to})
}

// NewExportError wraps a filesystem failure from the series writer.
func NewExportError(message string, cause error) *HeapbenchError {
	return Wrap(ErrCategoryExport, CodeExportFailed, message, cause)
}

// NewInternalError reports an unexpected condition.
func NewInternalError(message string, cause error) *HeapbenchError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
