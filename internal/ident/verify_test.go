package ident

import "testing"

func TestVerifySymbol_Valid(t *testing.T) {
	for _, s := range []string{
		"valid_name1",
		"x",
		"_",
		"$jquery",
		"_private",
		"camelCase",
		"añejo",
		"π",
	} {
		if corrected, ok := VerifySymbol(s); !ok || corrected != "" {
			t.Errorf("VerifySymbol(%q) = %q, %v; want valid", s, corrected, ok)
		}
	}
}

func TestVerifySymbol_Corrections(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"true", "_true"},       // reserved word
		{"let", "_let"},         // strict-mode reserved
		{"eval", "_eval"},       // strict-bind reserved
		{"1abc", "abc"},         // leading digit dropped, not replaced
		{"await", "_await"},     // the repair pipeline assumes module-strict rules
		{"", "_"},               // nothing usable
		{"123", "_"},            // digits cannot start and are dropped before a start exists
		{"foo-bar", "foobar"},   // invalid interior characters dropped
		{"  spaced  ", "spaced"},
		{"💥", "_"},             // no valid characters at all
		{"#private", "_private"}, // hash dropped, then the strict layer bites
		{"42this", "_this"},     // filtering can surface a reserved word
	}
	for _, tt := range tests {
		corrected, ok := VerifySymbol(tt.in)
		if ok {
			t.Errorf("VerifySymbol(%q) accepted, want correction %q", tt.in, tt.want)
			continue
		}
		if corrected != tt.want {
			t.Errorf("VerifySymbol(%q) = %q, want %q", tt.in, corrected, tt.want)
		}
	}
}

func TestVerifySymbol_CorrectionIsIdempotent(t *testing.T) {
	inputs := []string{
		"true", "1abc", "", "123", "foo-bar", "💥", "#private", "42this",
		"await", "yield", "--", "a b c", "0",
	}
	for _, in := range inputs {
		corrected, ok := VerifySymbol(in)
		if ok {
			continue
		}
		if again, ok := VerifySymbol(corrected); !ok {
			t.Errorf("correction %q of %q re-verifies to %q", corrected, in, again)
		}
	}
}

func TestVerifySymbol_KeepsJoinersInside(t *testing.T) {
	// ZWNJ between letters survives filtering.
	in := "ab\u200ccd!"
	corrected, ok := VerifySymbol(in)
	if ok {
		t.Fatalf("VerifySymbol(%q) accepted", in)
	}
	if corrected != "ab\u200ccd" {
		t.Errorf("VerifySymbol(%q) = %q", in, corrected)
	}
}
