package harness

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/roach88/deroman/internal/engine"
	"github.com/roach88/deroman/internal/lattice"
	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/script"
)

// TraceEvent records one executed conversion case.
type TraceEvent struct {
	Case      string `json:"case"`
	Input     string `json:"input"`
	Script    string `json:"script"`
	Context   string `json:"context,omitempty"`
	Format    string `json:"format"`
	Output    string `json:"output"`
	EdgeCount int    `json:"edge_count"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// RunToken identifies this run; fixed by the scenario or a fresh UUIDv7.
	RunToken string

	// Trace lists one event per case, in scenario order.
	Trace []TraceEvent

	// paths retains each case's selected path for assertions.
	paths map[string]lattice.Path
}

// Run executes every case of a scenario against a freshly built converter
// and evaluates the scenario's assertions.
//
// Rule files must parse cleanly: a scenario with malformed records is a
// broken fixture, not a skipped warning. Expect clauses are validated inline
// as cases run.
func Run(scenario *Scenario) (*Result, error) {
	conv, err := buildConverter(scenario)
	if err != nil {
		return nil, err
	}

	token := scenario.RunToken
	if token == "" {
		token = uuid.Must(uuid.NewV7()).String()
	}

	result := &Result{
		RunToken: token,
		paths:    make(map[string]lattice.Path, len(scenario.Cases)),
	}

	for _, c := range scenario.Cases {
		formatName := c.Format
		if formatName == "" {
			formatName = string(lattice.FormatString)
		}
		format, err := lattice.ParseFormat(formatName)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}

		output, err := conv.Convert(c.Input, c.Script, c.Context, format)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		path, _, err := conv.Path(c.Input, c.Script, c.Context)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		result.paths[c.Name] = path

		if c.Expect != "" && output != c.Expect {
			return nil, &AssertionError{
				Type:     "expect",
				Case:     c.Name,
				Expected: c.Expect,
				Actual:   output,
			}
		}

		result.Trace = append(result.Trace, TraceEvent{
			Case:      c.Name,
			Input:     c.Input,
			Script:    c.Script,
			Context:   c.Context,
			Format:    formatName,
			Output:    output,
			EdgeCount: len(path.Edges()),
		})
	}

	for i, a := range scenario.Assertions {
		if err := result.assert(a); err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
	}

	return result, nil
}

// buildConverter assembles the scenario's repository and registry.
func buildConverter(scenario *Scenario) (*engine.Converter, error) {
	var records []rules.Record
	for _, path := range scenario.Rules {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open rule file: %w", err)
		}
		recs, warnings, err := rules.ParseReader(f, path)
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(warnings) > 0 {
			return nil, fmt.Errorf("rule file %s: %d malformed record(s), first: %s",
				path, len(warnings), warnings[0].String())
		}
		records = append(records, recs...)
	}

	registry := script.Builtin()
	if scenario.ScriptsDir != "" {
		scripts, err := script.LoadCUEDir(scenario.ScriptsDir)
		if err != nil {
			return nil, err
		}
		for _, s := range scripts {
			if err := registry.Register(s); err != nil {
				return nil, err
			}
		}
	}

	repo, warnings := rules.Load(records)
	if len(warnings) > 0 {
		return nil, fmt.Errorf("rule load: %d invalid record(s), first: %s",
			len(warnings), warnings[0].String())
	}

	return engine.New(repo, registry, engine.Config{}), nil
}
