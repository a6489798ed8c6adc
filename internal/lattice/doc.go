// Package lattice implements the reverse-romanization core: candidate-edge
// lattice construction, deterministic path selection, and result rendering.
//
// ARCHITECTURE:
//
// Build-then-select:
// The Builder materializes every candidate substitution for an input - one
// edge per matching rule per offset, plus a synthesized length-1 fallback
// edge at every offset no rule covers. It never prunes or merges; resolution
// happens entirely in Select. The EDGES and LATTICE output formats depend on
// this completeness to expose all alternatives, not just the chosen ones.
//
// Greedy, non-backtracking selection:
// Select scans left to right, at each offset taking the top-ranked edge and
// jumping past it. Ranking: non-fallback beats fallback, then higher
// priority, then longer span, then earlier-declared rule. A locally optimal
// choice can foreclose a better total segmentation later; that is a known,
// accepted limitation. Globally optimal segmentation (DP over the lattice)
// is a documented extension, not the default.
//
// CRITICAL PATTERNS:
//
// Completeness invariant:
// Every lattice carries at least one edge at every offset, guaranteed by the
// fallback mechanism. Select therefore cannot fail on a built lattice.
//
// Purity:
// Build and Select are pure functions of immutable inputs; Render is a pure
// projection of the path and lattice. All three allocate only call-local
// state and may run concurrently without coordination.
package lattice
