// Package testutil provides shared helpers for building rule repositories
// and script registries in tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/script"
)

// Repo parses rule lines in the ::-delimited record format and loads them
// into a repository. Fails the test on any malformed line or load warning.
func Repo(t *testing.T, lines ...string) *rules.Repository {
	t.Helper()
	records := make([]rules.Record, 0, len(lines))
	for i, line := range lines {
		rec, err := rules.ParseLine(line, "testutil")
		require.NoError(t, err, "line %d: %s", i+1, line)
		records = append(records, rec)
	}
	repo, warnings := rules.Load(records)
	require.Empty(t, warnings)
	return repo
}

// Registry returns the builtin script set extended with the given extra
// scripts. Extras default to left-to-right when no direction is set.
func Registry(t *testing.T, extra ...string) *script.Registry {
	t.Helper()
	reg := script.Builtin()
	for _, name := range extra {
		err := reg.Register(&script.ReverseScript{
			Name:      name,
			Direction: script.LeftToRight,
		})
		require.NoError(t, err)
	}
	return reg
}

// Script fetches a script from the registry, failing the test if absent.
func Script(t *testing.T, reg *script.Registry, name string) *script.ReverseScript {
	t.Helper()
	s, err := reg.Get(name)
	require.NoError(t, err)
	return s
}
