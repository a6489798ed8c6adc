package lattice

// Select reduces a lattice to a single path with a left-to-right,
// non-backtracking greedy scan: at each offset take the top-ranked anchored
// edge and advance past it.
//
// Deterministic and pure: the same lattice always yields the same path.
// Cannot fail - the builder guarantees at least one edge at every offset, so
// the scan always reaches the end of the input. The returned path is a total,
// non-overlapping tiling of the input.
func Select(l *Lattice) Path {
	var path []Edge
	offset := 0
	for offset < l.Len() {
		best := bestAt(l.At(offset))
		path = append(path, best)
		offset = best.End
	}
	return Path{edges: path}
}

// bestAt picks the top-ranked edge among those anchored at one offset.
func bestAt(anchored []Edge) Edge {
	best := anchored[0]
	for _, e := range anchored[1:] {
		if ranksAbove(e, best) {
			best = e
		}
	}
	return best
}

// ranksAbove reports whether a outranks b. Rank order: non-fallback above
// fallback regardless of numeric priority, then higher priority, then longer
// span, then lower rule insertion index.
func ranksAbove(a, b Edge) bool {
	if a.Fallback != b.Fallback {
		return !a.Fallback
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Span() != b.Span() {
		return a.Span() > b.Span()
	}
	return a.Order < b.Order
}
