// Package ident implements identifier validity for ECMAScript: the
// character classifier, the reserved-word tables, and the symbol
// verifier/mangler used when transforms synthesize new names.
package ident

import "unicode"

// ASCII classification tables. Almost every identifier in real code is
// ASCII, so the first 128 code points answer from a flat bool table and
// only the rest pays for Unicode property lookups.
//
// Start: A-Z a-z _ $. Continue adds 0-9.
var (
	asciiStart = func() [128]bool {
		var t [128]bool
		for c := 'A'; c <= 'Z'; c++ {
			t[c] = true
		}
		for c := 'a'; c <= 'z'; c++ {
			t[c] = true
		}
		t['_'] = true
		t['$'] = true
		return t
	}()

	asciiContinue = func() [128]bool {
		t := asciiStart
		for c := '0'; c <= '9'; c++ {
			t[c] = true
		}
		return t
	}()
)

// Zero-width joiner/non-joiner. Unicode excludes them from ID_Continue
// but the grammar allows them mid-identifier.
const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// isIDStartRune reports the Unicode ID_Start property:
// L + Nl + Other_ID_Start, minus Pattern_Syntax and Pattern_White_Space.
func isIDStartRune(r rune) bool {
	return unicode.In(r,
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

// isIDContinueRune reports the Unicode ID_Continue property:
// ID_Start + Mn + Mc + Nd + Pc + Other_ID_Continue, minus the same
// exclusions.
func isIDContinueRune(r rune) bool {
	return unicode.In(r,
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

// IsValidStart reports whether r may begin an identifier.
func IsValidStart(r rune) bool {
	if r < 128 {
		return r >= 0 && asciiStart[r]
	}
	return isIDStartRune(r)
}

// IsValidContinue reports whether r may appear in an identifier after
// the first character.
func IsValidContinue(r rune) bool {
	if r < 128 {
		return r >= 0 && asciiContinue[r]
	}
	return isIDContinueRune(r) || r == zwnj || r == zwj
}
