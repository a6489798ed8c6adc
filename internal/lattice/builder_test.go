package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/deroman/internal/testutil"
)

func TestBuild_OneEdgePerMatchingRule(t *testing.T) {
	repo := testutil.Repo(t,
		"sh::ش::Arabic::200",
		"s::س::Arabic::100",
		"h::ه::Arabic::100",
	)
	reg := testutil.Registry(t)
	b := NewBuilder(repo)

	l := b.Build("sh", testutil.Script(t, reg, "Arabic"), "")
	require.Equal(t, 2, l.Len())

	// Offset 0: both "sh" and "s" match, longest first. No fallback edge
	// because rule edges cover the offset.
	at0 := l.At(0)
	require.Len(t, at0, 2)
	assert.Equal(t, "sh", at0[0].Latin)
	assert.Equal(t, 2, at0[0].Span())
	assert.Equal(t, "s", at0[1].Latin)
	assert.False(t, at0[0].Fallback)

	at1 := l.At(1)
	require.Len(t, at1, 1)
	assert.Equal(t, "h", at1[0].Latin)
}

func TestBuild_FallbackCoversEveryUncoveredOffset(t *testing.T) {
	repo := testutil.Repo(t, "s::س::Arabic::100")
	reg := testutil.Registry(t)
	b := NewBuilder(repo)

	l := b.Build("sok", testutil.Script(t, reg, "Arabic"), "")

	// Lattice completeness: at least one edge at every offset.
	for i := 0; i < l.Len(); i++ {
		require.NotEmpty(t, l.At(i), "offset %d has no anchored edge", i)
	}

	// 'o' and 'k' have no rules; exactly one length-1 fallback edge each,
	// mapped through the script's fallback table.
	at1 := l.At(1)
	require.Len(t, at1, 1)
	assert.True(t, at1[0].Fallback)
	assert.Equal(t, 1, at1[0].Span())
	assert.Equal(t, "و", at1[0].Target)

	at2 := l.At(2)
	require.Len(t, at2, 1)
	assert.Equal(t, "ك", at2[0].Target)
}

func TestBuild_NonLettersPassThrough(t *testing.T) {
	repo := testutil.Repo(t, "s::س::Arabic::100")
	reg := testutil.Registry(t)
	b := NewBuilder(repo)

	l := b.Build("s s!", testutil.Script(t, reg, "Arabic"), "")

	space := l.At(1)
	require.Len(t, space, 1)
	assert.True(t, space[0].Fallback)
	assert.Equal(t, " ", space[0].Target)

	bang := l.At(3)
	require.Len(t, bang, 1)
	assert.Equal(t, "!", bang[0].Target)
}

func TestBuild_ContextGatesRuleEdges(t *testing.T) {
	repo := testutil.Repo(t,
		"I::İ::Turkish::500::tur",
		"I::I::Turkish::300",
	)
	reg := testutil.Registry(t, "Turkish")
	b := NewBuilder(repo)
	turkish := testutil.Script(t, reg, "Turkish")

	withContext := b.Build("I", turkish, "tur")
	assert.Len(t, withContext.At(0), 2)

	without := b.Build("I", turkish, "")
	require.Len(t, without.At(0), 1)
	assert.Equal(t, "I", without.At(0)[0].Target)
}

func TestBuild_EmptyInput(t *testing.T) {
	repo := testutil.Repo(t, "s::س::Arabic::100")
	reg := testutil.Registry(t)
	b := NewBuilder(repo)

	l := b.Build("", testutil.Script(t, reg, "Arabic"), "")
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.All())
}

func TestBuild_RuneOffsets(t *testing.T) {
	// Multi-byte input: offsets count runes, not bytes.
	repo := testutil.Repo(t, "é::ي::Arabic::100")
	reg := testutil.Registry(t)
	b := NewBuilder(repo)

	l := b.Build("sé", testutil.Script(t, reg, "Arabic"), "")
	require.Equal(t, 2, l.Len())

	at1 := l.At(1)
	require.Len(t, at1, 1)
	assert.Equal(t, 1, at1[0].Start)
	assert.Equal(t, 2, at1[0].End)
	assert.Equal(t, "ي", at1[0].Target)
}
