// Package rules implements the substitution-rule repository for reverse
// romanization.
//
// A rule maps a Latin-script pattern to target-script text for one named
// script, with a numeric priority and an optional context tag (typically a
// language code). Rules are parsed from line-oriented records in the form
//
//	latin::target::script::priority[::context]
//
// and loaded into an immutable Repository.
//
// CRITICAL PATTERNS:
//
// Load-then-freeze:
// A Repository is built once by Load and never mutated afterwards. This makes
// it safe to share, unsynchronized, across concurrent conversion calls. Hot
// reload means building a fresh Repository and swapping the reference, never
// mutating the one in use.
//
// Batch warning reporting:
// Malformed records are skipped, not fatal. Load accumulates one Warning per
// skipped record and surfaces the whole set after loading completes, so a
// single bad line in a large rule file cannot take down startup.
//
// Deterministic lookup order:
// Lookup results are ordered by pattern length descending, then by insertion
// order. The same repository always answers the same query with the same
// slice, which the lattice builder relies on for reproducible lattices.
package rules
