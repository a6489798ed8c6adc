package rules

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// bucketKey indexes rules by leading rune and script so a lookup only scans
// rules that could possibly match at the queried offset.
type bucketKey struct {
	lead   rune
	script string
}

// Repository holds all loaded substitution rules, indexed for prefix lookup.
//
// A Repository is immutable after Load returns: it is safe to share across
// concurrent conversion calls without synchronization.
type Repository struct {
	buckets map[bucketKey][]RuleEntry
	count   int
	scripts map[string]bool
}

// Load validates records and builds an immutable Repository.
//
// Malformed records (empty pattern, empty script, non-positive priority) are
// skipped and reported in the returned warning slice; loading continues past
// them. Latin patterns are NFC-normalized so they match NFC-normalized input.
//
// Insertion order across the record slice assigns each accepted rule its
// stable Order index, which the path selector uses as the final tie-breaker.
func Load(records []Record) (*Repository, []Warning) {
	repo := &Repository{
		buckets: make(map[bucketKey][]RuleEntry),
		scripts: make(map[string]bool),
	}

	var warnings []Warning
	for _, rec := range records {
		if err := validate(rec); err != nil {
			warnings = append(warnings, Warning{
				Record: fmt.Sprintf("%s::%s::%s::%d", rec.Latin, rec.Target, rec.Script, rec.Priority),
				Err:    err,
			})
			continue
		}

		entry := RuleEntry{
			Latin:    norm.NFC.String(rec.Latin),
			Target:   rec.Target,
			Script:   rec.Script,
			Priority: rec.Priority,
			Context:  rec.Context,
			Order:    repo.count,
		}
		entry.latin = []rune(entry.Latin)

		key := bucketKey{lead: entry.latin[0], script: entry.Script}
		repo.buckets[key] = append(repo.buckets[key], entry)
		repo.scripts[entry.Script] = true
		repo.count++
	}

	// Longest pattern first within each bucket, insertion order on ties.
	// Lookup results inherit this ordering.
	for key := range repo.buckets {
		bucket := repo.buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			if len(bucket[i].latin) != len(bucket[j].latin) {
				return len(bucket[i].latin) > len(bucket[j].latin)
			}
			return bucket[i].Order < bucket[j].Order
		})
	}

	return repo, warnings
}

// validate re-checks the Record-level invariants. Records that came through
// ParseLine already satisfy these; records assembled by hand or read from a
// store may not.
func validate(rec Record) error {
	if rec.Latin == "" {
		return &FormatError{Code: ErrCodeEmptyPattern, Source: rec.Source, Detail: "latin pattern is empty"}
	}
	if rec.Script == "" {
		return &FormatError{Code: ErrCodeEmptyScript, Source: rec.Source, Detail: "script name is empty"}
	}
	if rec.Priority <= 0 {
		return &FormatError{
			Code:   ErrCodeBadPriority,
			Source: rec.Source,
			Detail: fmt.Sprintf("priority must be positive, got %d", rec.Priority),
		}
	}
	return nil
}

// Len returns the number of loaded rules.
func (r *Repository) Len() int {
	return r.count
}

// HasScript reports whether at least one rule targets the named script.
func (r *Repository) HasScript(name string) bool {
	return r.scripts[name]
}

// Lookup returns every rule whose Latin pattern is a prefix of text starting
// at offset, whose script matches, and whose context is either empty or equal
// to the supplied context.
//
// Results are ordered by pattern length descending, then insertion order.
// The returned slice is freshly allocated; callers may retain it.
func (r *Repository) Lookup(text []rune, offset int, script, context string) []RuleEntry {
	if offset < 0 || offset >= len(text) {
		return nil
	}

	bucket := r.buckets[bucketKey{lead: text[offset], script: script}]
	if len(bucket) == 0 {
		return nil
	}

	var matches []RuleEntry
	remaining := len(text) - offset
	for _, entry := range bucket {
		if len(entry.latin) > remaining {
			continue
		}
		if entry.Context != "" && entry.Context != context {
			continue
		}
		if !matchesAt(text, offset, entry.latin) {
			continue
		}
		matches = append(matches, entry)
	}
	return matches
}

// All returns every loaded rule ordered by insertion index. Intended for
// inspection tooling, not the conversion hot path.
func (r *Repository) All() []RuleEntry {
	entries := make([]RuleEntry, 0, r.count)
	for _, bucket := range r.buckets {
		entries = append(entries, bucket...)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
	return entries
}

func matchesAt(text []rune, offset int, pattern []rune) bool {
	for i, pr := range pattern {
		if text[offset+i] != pr {
			return false
		}
	}
	return true
}
