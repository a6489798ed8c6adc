package lattice

// Edge is one candidate substitution covering a contiguous span of the input.
//
// Edges are created fresh per conversion call and never mutated afterwards.
type Edge struct {
	// Start and End delimit the covered span in rune offsets, End exclusive.
	// End > Start always holds.
	Start int
	End   int

	// Latin is the matched input substring.
	Latin string

	// Target is the replacement text in the destination script.
	Target string

	// Priority is the originating rule's precedence. Zero for fallback edges.
	Priority int

	// Fallback marks edges synthesized from the script's fallback mapping
	// rather than a loaded rule. Fallback edges rank below any rule edge.
	Fallback bool

	// Order is the originating rule's stable insertion index, the final
	// selection tie-breaker. Zero for fallback edges.
	Order int
}

// Span returns the edge length in runes.
func (e Edge) Span() int {
	return e.End - e.Start
}

// Lattice is the complete set of candidate edges for one input, indexed by
// start offset. Read-only once built.
type Lattice struct {
	input []rune
	edges [][]Edge
}

// Input returns the input text the lattice was built for.
func (l *Lattice) Input() string {
	return string(l.input)
}

// Len returns the input length in runes.
func (l *Lattice) Len() int {
	return len(l.input)
}

// At returns the edges anchored at offset i, in builder order: rule edges
// longest-first, fallback edge last. The returned slice must not be modified.
func (l *Lattice) At(i int) []Edge {
	if i < 0 || i >= len(l.edges) {
		return nil
	}
	return l.edges[i]
}

// All returns every edge in the lattice, ordered by start offset and, within
// an offset, builder order. The slice is freshly allocated.
func (l *Lattice) All() []Edge {
	var all []Edge
	for _, anchored := range l.edges {
		all = append(all, anchored...)
	}
	return all
}

// Path is an ordered, contiguous, non-overlapping sequence of edges spanning
// exactly the whole input. It is the sole object carried into rendering.
type Path struct {
	edges []Edge
}

// Edges returns the path's edges in order. The returned slice must not be
// modified.
func (p Path) Edges() []Edge {
	return p.edges
}

// String concatenates each edge's target text in path order.
func (p Path) String() string {
	var out []byte
	for _, e := range p.edges {
		out = append(out, e.Target...)
	}
	return string(out)
}
