// Package store provides a SQLite-backed rule source.
//
// Rule records can be imported once (typically from the ::-delimited text
// format) and read back as already-parsed records for repository loading.
// Curated rule sets live in a database instead of loose text files; a
// deployment hands the store to the loader exactly like a rule file path.
//
// # Critical Patterns
//
// Deterministic read order:
// ReadRecords always orders by the autoincrement id, so a repository built
// from a store assigns the same rule insertion order on every load. Rule
// order is a selection tie-breaker, so this matters for correctness, not
// just aesthetics.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
