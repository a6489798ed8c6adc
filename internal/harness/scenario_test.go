package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ResolvesRelativePaths(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "arabic_basic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "arabic_basic", scenario.Name)
	assert.Equal(t, "run-arabic-001", scenario.RunToken)
	require.Len(t, scenario.Rules, 1)
	assert.Equal(t, filepath.Join("testdata", "scenarios", "..", "rules", "arabic.txt"), scenario.Rules[0])
	require.Len(t, scenario.Cases, 3)
	assert.Len(t, scenario.Assertions, 3)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
rules: [r.txt]
cases:
  - name: a
    input: x
    script: Arabic
assertion:
  - type: output_equals
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "rules: [r.txt]\ncases:\n  - {name: a, input: x, script: Arabic}\n",
			wantErr: "name is required",
		},
		{
			name:    "no rules",
			content: "name: s\ncases:\n  - {name: a, input: x, script: Arabic}\n",
			wantErr: "rule file is required",
		},
		{
			name:    "no cases",
			content: "name: s\nrules: [r.txt]\n",
			wantErr: "case is required",
		},
		{
			name:    "case without script",
			content: "name: s\nrules: [r.txt]\ncases:\n  - {name: a, input: x}\n",
			wantErr: "script is required",
		},
		{
			name:    "duplicate case name",
			content: "name: s\nrules: [r.txt]\ncases:\n  - {name: a, input: x, script: Arabic}\n  - {name: a, input: y, script: Arabic}\n",
			wantErr: "duplicate name",
		},
		{
			name:    "unknown assertion type",
			content: "name: s\nrules: [r.txt]\ncases:\n  - {name: a, input: x, script: Arabic}\nassertions:\n  - {type: bogus, case: a}\n",
			wantErr: "unknown type",
		},
		{
			name:    "assertion against unknown case",
			content: "name: s\nrules: [r.txt]\ncases:\n  - {name: a, input: x, script: Arabic}\nassertions:\n  - {type: total_coverage, case: b}\n",
			wantErr: "unknown case",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
