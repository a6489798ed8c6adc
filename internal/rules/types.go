package rules

// RuleEntry is one immutable Latin-to-target substitution rule.
//
// Entries are created by Load and never mutated afterwards.
type RuleEntry struct {
	// Latin is the Latin-script pattern, NFC-normalized, case-sensitive.
	// Never empty.
	Latin string

	// Target is the replacement text in the destination script.
	Target string

	// Script names the ReverseScript this rule belongs to.
	Script string

	// Priority is the precedence value. Higher wins. Always > 0.
	Priority int

	// Context restricts the rule to one caller-supplied context tag
	// (typically an ISO language code). Empty means universally eligible.
	Context string

	// Order is the stable insertion index assigned by Load, used as the
	// final tie-breaker during path selection. Earlier-declared rules
	// have lower Order.
	Order int

	// latin is the pattern as runes, precomputed for prefix matching.
	latin []rune
}

// RuneLen returns the pattern length in runes.
func (r RuleEntry) RuneLen() int {
	return len(r.latin)
}

// Record is a raw rule record before validation and indexing.
//
// Records are produced by the line parser or read back from a rule store;
// Load validates them and turns the survivors into RuleEntry values.
type Record struct {
	Latin    string
	Target   string
	Script   string
	Priority int
	Context  string

	// Source locates the record for warning messages, e.g. "file.txt:12".
	Source string
}
