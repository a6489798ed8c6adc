package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"arabic_basic", "turkish_context"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)
			require.NotEmpty(t, scenario.RunToken, "golden scenarios must pin run_token")

			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
