package rules

import (
	"errors"
	"fmt"
)

// FormatError represents a malformed rule record detected at load time.
//
// Format errors are recoverable: the offending record is skipped, loading
// continues, and the aggregated set is reported to the caller as warnings.
type FormatError struct {
	// Code identifies the error category.
	Code FormatErrorCode

	// Source locates the record, e.g. "reverse_arabic.txt:41" or a store
	// row reference. Empty when the record came from an in-memory source.
	Source string

	// Detail is a human-readable description of what was wrong.
	Detail string
}

// FormatErrorCode categorizes rule format errors.
type FormatErrorCode string

const (
	// ErrCodeFieldCount indicates a record with too few ::-separated fields.
	ErrCodeFieldCount FormatErrorCode = "FIELD_COUNT"

	// ErrCodeEmptyPattern indicates an empty Latin pattern.
	ErrCodeEmptyPattern FormatErrorCode = "EMPTY_PATTERN"

	// ErrCodeBadPriority indicates a non-numeric or non-positive priority.
	ErrCodeBadPriority FormatErrorCode = "BAD_PRIORITY"

	// ErrCodeEmptyScript indicates a record with no script name.
	ErrCodeEmptyScript FormatErrorCode = "EMPTY_SCRIPT"
)

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// IsFormatError returns true if the error is a rule format error.
// Uses errors.As to handle wrapped errors.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Warning pairs a skipped record with the format error that disqualified it.
type Warning struct {
	// Record is the raw text of the skipped record, as parsed.
	Record string

	// Err is the format error. Always a *FormatError.
	Err error
}

func (w Warning) String() string {
	return w.Err.Error()
}
