package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvert_StringOutput(t *testing.T) {
	out, err := runCLI(t,
		"convert", "shams",
		"--rules", filepath.Join("testdata", "arabic.txt"),
		"--script", "Arabic",
	)
	require.NoError(t, err)
	assert.Equal(t, "شامس", strings.TrimSpace(out))
}

func TestConvert_EdgesOutput(t *testing.T) {
	out, err := runCLI(t,
		"convert", "sh",
		"--rules", filepath.Join("testdata", "arabic.txt"),
		"--script", "Arabic",
		"--format", "edges",
	)
	require.NoError(t, err)

	var edges []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &edges))
	require.Len(t, edges, 1)
	assert.Equal(t, "sh", edges[0]["latin"])
	assert.Equal(t, "ش", edges[0]["target"])
}

func TestConvert_ContextFlag(t *testing.T) {
	rulesPath := filepath.Join("testdata", "turkish.txt")
	scriptsDir := filepath.Join("testdata", "scripts")

	out, err := runCLI(t,
		"convert", "I",
		"--rules", rulesPath,
		"--scripts-dir", scriptsDir,
		"--script", "Turkish",
		"--context", "tur",
	)
	require.NoError(t, err)
	assert.Equal(t, "İ", strings.TrimSpace(out))

	out, err = runCLI(t,
		"convert", "I",
		"--rules", rulesPath,
		"--scripts-dir", scriptsDir,
		"--script", "Turkish",
	)
	require.NoError(t, err)
	assert.Equal(t, "I", strings.TrimSpace(out))
}

func TestConvert_UnknownScriptExitsWithFailure(t *testing.T) {
	_, err := runCLI(t,
		"convert", "sh",
		"--rules", filepath.Join("testdata", "arabic.txt"),
		"--script", "Greek",
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "Greek")
}

func TestConvert_NoRuleSources(t *testing.T) {
	_, err := runCLI(t, "convert", "sh", "--script", "Arabic")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvert_InvalidFormat(t *testing.T) {
	_, err := runCLI(t,
		"convert", "sh",
		"--rules", filepath.Join("testdata", "arabic.txt"),
		"--script", "Arabic",
		"--format", "xml",
	)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
