// Package harness provides a conformance testing framework for the
// reverse-romanization engine.
//
// A scenario is a YAML file naming rule sources, an optional CUE script
// directory, and a list of conversion cases with expected outputs. Running a
// scenario builds a fresh repository and registry, executes every case
// through the real converter, and produces a deterministic trace.
//
// Traces can be compared against golden files (testdata/golden) with
// RunWithGolden, or validated with inline assertions:
//
//   - output_equals: a case's output matches exactly
//   - output_contains: a case's output contains a substring
//   - edge_count: a case's selected path has exactly N edges
//   - total_coverage: a case's path tiles the whole input with no gaps
//     or overlaps
//
// Scenarios run against the actual engine, not a stub: an expectation
// failure means the conversion pipeline really disagrees with the scenario.
package harness
