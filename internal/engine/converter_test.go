package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/deroman/internal/lattice"
	"github.com/roach88/deroman/internal/script"
	"github.com/roach88/deroman/internal/testutil"
)

func newConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()
	repo := testutil.Repo(t,
		"sh::ش::Arabic::200",
		"s::س::Arabic::100",
		"h::ه::Arabic::100",
		"I::İ::Turkish::500::tur",
		"I::I::Turkish::300",
	)
	return New(repo, testutil.Registry(t, "Turkish"), cfg)
}

func TestConvert_String(t *testing.T) {
	c := newConverter(t, Config{})

	out, err := c.Convert("sh", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, "ش", out)
}

func TestConvert_UnknownScript(t *testing.T) {
	c := newConverter(t, Config{})

	out, err := c.Convert("sh", "Greek", "", lattice.FormatString)
	assert.Empty(t, out)
	require.Error(t, err)
	assert.True(t, script.IsUnknownScript(err))
}

func TestConvert_InvalidFormat(t *testing.T) {
	c := newConverter(t, Config{})

	_, err := c.Convert("sh", "Arabic", "", lattice.Format("csv"))
	assert.Error(t, err)
}

func TestConvert_ContextGating(t *testing.T) {
	c := newConverter(t, Config{})

	out, err := c.Convert("I", "Turkish", "tur", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, "İ", out)

	for _, context := range []string{"eng", ""} {
		out, err = c.Convert("I", "Turkish", context, lattice.FormatString)
		require.NoError(t, err)
		assert.Equal(t, "I", out, "context %q", context)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	// Identical results with and without caching, across repeated calls.
	cached := newConverter(t, Config{})
	uncached := newConverter(t, Config{CacheCapacity: 0})

	for _, format := range lattice.ValidFormats {
		want, err := uncached.Convert("shahid", "Arabic", "", format)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			got, err := cached.Convert("shahid", "Arabic", "", format)
			require.NoError(t, err)
			assert.Equal(t, want, got, "format %s", format)
		}
	}
}

func TestConvert_CacheTransparencyUnderEviction(t *testing.T) {
	c := newConverter(t, Config{CacheCapacity: 1})

	first, err := c.Convert("sh", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)

	_, err = c.Convert("h", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)

	again, err := c.Convert("sh", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestConvert_NormalizesInputToNFC(t *testing.T) {
	repo := testutil.Repo(t, "é::ي::Arabic::100")
	c := New(repo, testutil.Registry(t), Config{})

	// Decomposed input matches the precomposed pattern.
	out, err := c.Convert("é", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, "ي", out)
}

func TestConvert_FallbackTotality(t *testing.T) {
	c := newConverter(t, Config{})

	out, err := c.Convert("xyz 42!", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, "كسيز 42!", out)
}

func TestConvert_EmptyInput(t *testing.T) {
	c := newConverter(t, Config{})

	out, err := c.Convert("", "Arabic", "", lattice.FormatString)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestConvert_Concurrent(t *testing.T) {
	c := newConverter(t, Config{CacheCapacity: 2})
	inputs := []string{"sh", "h", "shsh", "hs", "s"}

	want := make(map[string]string, len(inputs))
	for _, in := range inputs {
		out, err := c.Convert(in, "Arabic", "", lattice.FormatString)
		require.NoError(t, err)
		want[in] = out
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				in := inputs[(n+j)%len(inputs)]
				out, err := c.Convert(in, "Arabic", "", lattice.FormatString)
				require.NoError(t, err)
				require.Equal(t, want[in], out)
			}
		}(i)
	}
	wg.Wait()
}

func TestPath_ReturnsLatticeAndTiling(t *testing.T) {
	c := newConverter(t, Config{})

	p, l, err := c.Path("shams", "Arabic", "")
	require.NoError(t, err)
	require.NotNil(t, l)

	offset := 0
	for _, e := range p.Edges() {
		require.Equal(t, offset, e.Start)
		offset = e.End
	}
	assert.Equal(t, l.Len(), offset)
}

func TestScriptsAndRules_Inspection(t *testing.T) {
	c := newConverter(t, Config{})
	assert.Contains(t, c.Scripts(), "Arabic")
	assert.Len(t, c.Rules(), 5)
}
