package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&ReverseScript{Name: "Test", Direction: LeftToRight})
	require.NoError(t, err)

	s, err := r.Get("Test")
	require.NoError(t, err)
	assert.Equal(t, "Test", s.Name)
}

func TestRegistry_UnknownScript(t *testing.T) {
	r := NewRegistry()

	s, err := r.Get("Klingon")
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, IsUnknownScript(err))

	var ue *UnknownScriptError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Klingon", ue.Name)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&ReverseScript{Name: "Test", Direction: LeftToRight}))

	err := r.Register(&ReverseScript{Name: "Test", Direction: RightToLeft})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_RejectsInvalidDefinitions(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(&ReverseScript{Name: "", Direction: LeftToRight}))
	assert.Error(t, r.Register(&ReverseScript{Name: "Test", Direction: "down"}))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Swahili", "Arabic", "Devanagari"} {
		require.NoError(t, r.Register(&ReverseScript{Name: name, Direction: LeftToRight}))
	}
	assert.Equal(t, []string{"Arabic", "Devanagari", "Swahili"}, r.Names())
}

func TestBuiltin_StandardSet(t *testing.T) {
	r := Builtin()
	assert.Equal(t, []string{"Arabic", "Devanagari", "Swahili"}, r.Names())

	arabic, err := r.Get("Arabic")
	require.NoError(t, err)
	assert.Equal(t, RightToLeft, arabic.Direction)
	assert.False(t, arabic.Abugida)

	devanagari, err := r.Get("Devanagari")
	require.NoError(t, err)
	assert.True(t, devanagari.Abugida)
}
