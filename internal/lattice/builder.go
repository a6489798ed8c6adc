package lattice

import (
	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/script"
)

// Builder constructs candidate-edge lattices from an immutable rule
// repository. Safe for concurrent use.
type Builder struct {
	repo *rules.Repository
}

// NewBuilder returns a Builder over the given repository.
func NewBuilder(repo *rules.Repository) *Builder {
	return &Builder{repo: repo}
}

// Build enumerates every candidate substitution edge for text.
//
// For every rune offset, each matching rule contributes one edge. Offsets no
// rule covers get exactly one length-1 fallback edge from the script's total
// fallback mapping, so the lattice is never partial: at least one edge is
// anchored at every offset.
//
// text must already be NFC-normalized; the engine normalizes before calling.
func (b *Builder) Build(text string, sc *script.ReverseScript, context string) *Lattice {
	input := []rune(text)
	l := &Lattice{
		input: input,
		edges: make([][]Edge, len(input)),
	}

	for i := range input {
		matches := b.repo.Lookup(input, i, sc.Name, context)
		anchored := make([]Edge, 0, len(matches)+1)
		for _, rule := range matches {
			anchored = append(anchored, Edge{
				Start:    i,
				End:      i + rule.RuneLen(),
				Latin:    rule.Latin,
				Target:   rule.Target,
				Priority: rule.Priority,
				Order:    rule.Order,
			})
		}
		if len(anchored) == 0 {
			anchored = append(anchored, Edge{
				Start:    i,
				End:      i + 1,
				Latin:    string(input[i]),
				Target:   sc.Fallback(input[i]),
				Fallback: true,
			})
		}
		l.edges[i] = anchored
	}

	return l
}
