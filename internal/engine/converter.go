package engine

import (
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/deroman/internal/cache"
	"github.com/roach88/deroman/internal/lattice"
	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/script"
)

// DefaultCacheCapacity bounds the result cache when the caller does not
// configure one.
const DefaultCacheCapacity = 65536

// Config carries converter tuning knobs.
type Config struct {
	// CacheCapacity bounds the result cache. 0 disables caching; negative
	// values select DefaultCacheCapacity.
	CacheCapacity int
}

// Converter is the conversion entry point. Construct once at startup and
// share freely across goroutines.
type Converter struct {
	repo     *rules.Repository
	registry *script.Registry
	builder  *lattice.Builder
	results  *cache.Cache
}

// New returns a Converter over an immutable repository and registry.
func New(repo *rules.Repository, registry *script.Registry, cfg Config) *Converter {
	capacity := cfg.CacheCapacity
	if capacity < 0 {
		capacity = DefaultCacheCapacity
	}
	return &Converter{
		repo:     repo,
		registry: registry,
		builder:  lattice.NewBuilder(repo),
		results:  cache.New(capacity),
	}
}

// Convert renders text into the named target script.
//
// The input is NFC-normalized before matching so that equivalent code point
// sequences convert identically and share a cache entry. context gates
// context-tagged rules; pass "" for none.
//
// Fails with *script.UnknownScriptError if the script was never registered,
// and on an invalid format. Both are checked before any lattice work, so a
// failed call produces no partial result.
func (c *Converter) Convert(text, scriptName, context string, format lattice.Format) (string, error) {
	if _, err := lattice.ParseFormat(string(format)); err != nil {
		return "", err
	}
	sc, err := c.registry.Get(scriptName)
	if err != nil {
		return "", err
	}

	normalized := norm.NFC.String(text)
	key := cache.Key{Text: normalized, Script: scriptName, Context: context, Format: format}
	result := c.results.GetOrCompute(key, func() string {
		l := c.builder.Build(normalized, sc, context)
		p := lattice.Select(l)
		// Render cannot fail: the format was validated above.
		out, _ := lattice.Render(p, l, format)
		return out
	})
	return result, nil
}

// Path runs the uncached pipeline and returns the selected path together
// with the full lattice. Intended for diagnostics and the conformance
// harness; Convert is the production entry point.
func (c *Converter) Path(text, scriptName, context string) (lattice.Path, *lattice.Lattice, error) {
	sc, err := c.registry.Get(scriptName)
	if err != nil {
		return lattice.Path{}, nil, err
	}
	l := c.builder.Build(norm.NFC.String(text), sc, context)
	return lattice.Select(l), l, nil
}

// Scripts returns the names of all registered scripts, sorted.
func (c *Converter) Scripts() []string {
	return c.registry.Names()
}

// Rules returns every loaded rule in declaration order.
func (c *Converter) Rules() []rules.RuleEntry {
	return c.repo.All()
}
