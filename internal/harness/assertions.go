package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when a scenario assertion or expect clause
// fails. It includes enough context to debug the failure without re-running.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Case     string // Case the assertion applied to
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s (case %q)\n", e.Type, e.Case)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// assert evaluates one assertion against the run result.
func (r *Result) assert(a Assertion) error {
	event, ok := r.event(a.Case)
	if !ok {
		return fmt.Errorf("no trace event for case %q", a.Case)
	}

	switch a.Type {
	case AssertOutputEquals:
		if event.Output != a.Value {
			return &AssertionError{
				Type:     a.Type,
				Case:     a.Case,
				Expected: a.Value,
				Actual:   event.Output,
			}
		}

	case AssertOutputContains:
		if !strings.Contains(event.Output, a.Value) {
			return &AssertionError{
				Type:     a.Type,
				Case:     a.Case,
				Expected: fmt.Sprintf("output containing %q", a.Value),
				Actual:   event.Output,
			}
		}

	case AssertEdgeCount:
		if event.EdgeCount != a.Count {
			return &AssertionError{
				Type:     a.Type,
				Case:     a.Case,
				Expected: fmt.Sprintf("%d edge(s)", a.Count),
				Actual:   fmt.Sprintf("%d edge(s)", event.EdgeCount),
			}
		}

	case AssertTotalCoverage:
		if err := r.assertTotalCoverage(a, event); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}

	return nil
}

// assertTotalCoverage re-checks the tiling invariant on the selected path:
// contiguous, non-overlapping edges spanning exactly the input length.
func (r *Result) assertTotalCoverage(a Assertion, event TraceEvent) error {
	path := r.paths[a.Case]
	offset := 0
	for _, e := range path.Edges() {
		if e.Start != offset || e.End <= e.Start {
			return &AssertionError{
				Type:     a.Type,
				Case:     a.Case,
				Expected: fmt.Sprintf("edge starting at %d", offset),
				Actual:   fmt.Sprintf("edge [%d,%d)", e.Start, e.End),
			}
		}
		offset = e.End
	}
	inputLen := len([]rune(event.Input))
	if offset != inputLen {
		return &AssertionError{
			Type:     a.Type,
			Case:     a.Case,
			Expected: fmt.Sprintf("path spanning [0,%d)", inputLen),
			Actual:   fmt.Sprintf("path ending at %d", offset),
		}
	}
	return nil
}

func (r *Result) event(caseName string) (TraceEvent, bool) {
	for _, event := range r.Trace {
		if event.Case == caseName {
			return event, true
		}
	}
	return TraceEvent{}, false
}
