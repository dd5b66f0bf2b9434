package segmenter

import "unicode"

// pythonIsUpper reproduces Python's str.isupper(): true iff at least one
// "cased" character is present and every cased character is uppercase.
// Uncased characters (digits, punctuation, most CJK) never invalidate the
// predicate. Go's unicode package has no single "Cased" table; Cased is the
// union of the Lowercase and Uppercase derived properties (general category
// Ll/Lu plus Other_Lowercase/Other_Uppercase) and the titlecase letters, so
// those tables stand in for it. A titlecase letter is cased but not
// uppercase, so it makes the predicate false (spec §9 "Case predicate").
func pythonIsUpper(s string) bool {
	sawCased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r), unicode.Is(unicode.Other_Lowercase, r):
			return false
		case unicode.IsUpper(r), unicode.Is(unicode.Other_Uppercase, r):
			sawCased = true
		}
	}
	return sawCased
}
