// Package engine exposes the reverse-romanization entry point.
//
// A Converter wires the immutable rule repository and script registry to the
// lattice builder and path selector, and fronts them with a bounded LRU
// result cache.
//
// Control flow per call: normalize input -> resolve script (the only
// conversion-time failure) -> cache lookup -> on miss, build lattice, select
// path, render -> store and return. Conversion for a registered script cannot
// otherwise fail: the fallback mechanism guarantees total input coverage.
//
// A Converter is safe for concurrent use. The repository and registry are
// read-only after construction, the lattice pipeline is pure, and the cache
// serializes its own mutation internally.
package engine
