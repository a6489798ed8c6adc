package script

import (
	"fmt"
	"unicode"
)

// Direction is the writing direction of a script.
type Direction string

const (
	// LeftToRight covers Latin, Devanagari, and most other scripts.
	LeftToRight Direction = "ltr"

	// RightToLeft covers Arabic, Hebrew, and related scripts.
	RightToLeft Direction = "rtl"
)

// PositionClass identifies where in a word a vowel-insertion rule applies.
// Used only by the abugida hook.
type PositionClass string

const (
	// ConsonantFinal applies after a word-final consonant.
	ConsonantFinal PositionClass = "consonant_final"

	// ConsonantMedial applies between two consonants.
	ConsonantMedial PositionClass = "consonant_medial"
)

// ReverseScript describes one target script.
//
// A ReverseScript is plain data plus two small methods. It is immutable
// after registration: callers must not modify its maps or slices.
type ReverseScript struct {
	// Name identifies the script, e.g. "Arabic".
	Name string

	// Direction is the script's writing direction. Metadata only; the
	// engine emits target text in logical order regardless of direction.
	Direction Direction

	// Abugida flags scripts whose consonants carry an inherent vowel.
	// Only abugida scripts ever invoke the vowel-insertion hook.
	Abugida bool

	// DefaultVowels lists the script's default vowels, e.g. ["a","i","u"].
	DefaultVowels []string

	// VowelInsertion maps a position class to the vowel inserted there.
	// Consulted only through InsertVowel, and only for abugida scripts.
	VowelInsertion map[PositionClass]string

	// FallbackMap maps individual Latin runes to target graphemes for
	// characters no rule covers. Consulted through Fallback.
	FallbackMap map[rune]string
}

// Validate checks the script definition invariants.
func (s *ReverseScript) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("script name is empty")
	}
	switch s.Direction {
	case LeftToRight, RightToLeft:
	default:
		return fmt.Errorf("script %s: invalid direction %q", s.Name, s.Direction)
	}
	return nil
}

// Fallback returns the target grapheme for a rune no rule covers.
//
// The mapping is total: an exact FallbackMap hit wins, then a lowercased hit,
// and any remaining rune (punctuation, digits, whitespace, unmapped letters)
// passes through unchanged. Fallback never fails.
func (s *ReverseScript) Fallback(r rune) string {
	if target, ok := s.FallbackMap[r]; ok {
		return target
	}
	if target, ok := s.FallbackMap[unicode.ToLower(r)]; ok {
		return target
	}
	return string(r)
}

// InsertVowel is the abugida vowel-insertion extension point.
//
// preceding is the target text of the edge the vowel would follow; class says
// where in the word the insertion point sits. For non-abugida scripts, and
// for position classes the script defines no vowel for, the hook is a no-op
// and returns ok=false.
//
// The engine does not call this hook itself; full abugida vowel logic is a
// future extension built on top of it.
func (s *ReverseScript) InsertVowel(preceding string, class PositionClass) (string, bool) {
	if !s.Abugida || preceding == "" {
		return "", false
	}
	vowel, ok := s.VowelInsertion[class]
	if !ok || vowel == "" {
		return "", false
	}
	return vowel, true
}
