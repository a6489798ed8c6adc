package script

// Builtin returns a Registry preloaded with the standard script set.
//
// The set mirrors the shipped rule data: Arabic and Swahili carry full
// single-letter fallback maps; Devanagari is abugida-flagged with the
// vowel-insertion hook wired but relies on rules for its coverage.
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range []*ReverseScript{arabic(), devanagari(), swahili()} {
		// Builtin definitions are static; registration cannot fail.
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

func arabic() *ReverseScript {
	return &ReverseScript{
		Name:          "Arabic",
		Direction:     RightToLeft,
		DefaultVowels: []string{"a", "i", "u"},
		VowelInsertion: map[PositionClass]string{
			ConsonantFinal:  "a",
			ConsonantMedial: "i",
		},
		FallbackMap: map[rune]string{
			'a': "ا", 'b': "ب", 'c': "س", 'd': "د", 'e': "ي",
			'f': "ف", 'g': "ج", 'h': "ه", 'i': "ي", 'j': "ج",
			'k': "ك", 'l': "ل", 'm': "م", 'n': "ن", 'o': "و",
			'p': "ب", 'q': "ق", 'r': "ر", 's': "س", 't': "ت",
			'u': "و", 'v': "ف", 'w': "و", 'x': "كس", 'y': "ي", 'z': "ز",
		},
	}
}

func devanagari() *ReverseScript {
	return &ReverseScript{
		Name:          "Devanagari",
		Direction:     LeftToRight,
		Abugida:       true,
		DefaultVowels: []string{"a"},
		VowelInsertion: map[PositionClass]string{
			ConsonantFinal:  "a",
			ConsonantMedial: "a",
		},
	}
}

func swahili() *ReverseScript {
	return &ReverseScript{
		Name:          "Swahili",
		Direction:     LeftToRight,
		DefaultVowels: []string{"a", "i", "u"},
		VowelInsertion: map[PositionClass]string{
			ConsonantFinal:  "a",
			ConsonantMedial: "i",
		},
		FallbackMap: map[rune]string{
			'c': "ch", 'q': "k", 'x': "ks",
		},
	}
}
