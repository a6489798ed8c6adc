package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conversion conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Rules lists rule files in the ::-delimited record format.
	// Paths are relative to the scenario file location.
	Rules []string `yaml:"rules"`

	// ScriptsDir optionally points at CUE script definitions registered on
	// top of the builtin set. Relative to the scenario file location.
	ScriptsDir string `yaml:"scripts_dir,omitempty"`

	// RunToken is an optional fixed token for deterministic golden file
	// comparison. If empty, a fresh UUIDv7 is generated per run.
	RunToken string `yaml:"run_token,omitempty"`

	// Cases lists the conversions to execute, in order.
	Cases []Case `yaml:"cases"`

	// Assertions validate the resulting trace.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one conversion to execute.
type Case struct {
	// Name identifies the case within the scenario; assertions refer to it.
	Name string `yaml:"name"`

	// Input is the Latin text to convert.
	Input string `yaml:"input"`

	// Script is the target script name.
	Script string `yaml:"script"`

	// Context optionally gates context-tagged rules.
	Context string `yaml:"context,omitempty"`

	// Format is the output format; defaults to "string".
	Format string `yaml:"format,omitempty"`

	// Expect is the expected output. Empty skips the inline check.
	Expect string `yaml:"expect,omitempty"`
}

// Assertion validates one aspect of the trace.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Case names the case the assertion applies to.
	Case string `yaml:"case"`

	// Value is the expected output (output_equals) or substring
	// (output_contains).
	Value string `yaml:"value,omitempty"`

	// Count is the expected edge count (edge_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputEquals   = "output_equals"
	AssertOutputContains = "output_contains"
	AssertEdgeCount      = "edge_count"
	AssertTotalCoverage  = "total_coverage"
)

// LoadScenario reads and parses a scenario YAML file. Rule and script paths
// are resolved relative to the scenario file's directory.
//
// Returns an error if the file is missing, malformed, contains unknown
// fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	for i, rulePath := range scenario.Rules {
		if !filepath.IsAbs(rulePath) {
			scenario.Rules[i] = filepath.Join(base, rulePath)
		}
	}
	if scenario.ScriptsDir != "" && !filepath.IsAbs(scenario.ScriptsDir) {
		scenario.ScriptsDir = filepath.Join(base, scenario.ScriptsDir)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Rules) == 0 {
		return fmt.Errorf("at least one rule file is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = true
		if c.Script == "" {
			return fmt.Errorf("case %q: script is required", c.Name)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertOutputEquals, AssertOutputContains, AssertEdgeCount, AssertTotalCoverage:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
		if !seen[a.Case] {
			return fmt.Errorf("assertion %d: unknown case %q", i, a.Case)
		}
	}

	return nil
}
