package lattice

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// Format selects the rendered view of a conversion result.
type Format string

const (
	// FormatString renders the selected path as plain target-script text.
	FormatString Format = "string"

	// FormatEdges renders the selected path's edges as JSON for inspection.
	FormatEdges Format = "edges"

	// FormatLattice renders every candidate edge, chosen or not, as JSON
	// for diagnostic tooling.
	FormatLattice Format = "lattice"
)

// ValidFormats lists the allowed output formats.
var ValidFormats = []Format{FormatString, FormatEdges, FormatLattice}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	for _, valid := range ValidFormats {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: must be one of %v", s, ValidFormats)
}

// edgeView is the JSON projection of one edge.
type edgeView struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Latin    string `json:"latin"`
	Target   string `json:"target"`
	Priority int    `json:"priority"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Render projects a selected path and its source lattice into the requested
// format. It is a pure projection: neither the path nor the lattice is
// mutated. JSON output is deterministic for a given path and lattice.
func Render(p Path, l *Lattice, f Format) (string, error) {
	switch f {
	case FormatString:
		return p.String(), nil
	case FormatEdges:
		return renderEdges(p.Edges())
	case FormatLattice:
		return renderEdges(l.All())
	default:
		return "", fmt.Errorf("invalid format %q: must be one of %v", f, ValidFormats)
	}
}

func renderEdges(edges []Edge) (string, error) {
	views := lo.Map(edges, func(e Edge, _ int) edgeView {
		return edgeView{
			Start:    e.Start,
			End:      e.End,
			Latin:    e.Latin,
			Target:   e.Target,
			Priority: e.Priority,
			Fallback: e.Fallback,
		}
	})
	out, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render edges: %w", err)
	}
	return string(out), nil
}
