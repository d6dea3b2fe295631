package fuzztests

import (
	"testing"
	"unicode/utf8"

	"jolt/internal/ident"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzVerifySymbol(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		corrected, ok := ident.VerifySymbol(input)
		if ok {
			if corrected != "" {
				t.Fatalf("valid input %q still produced a correction %q", input, corrected)
			}
			return
		}

		if corrected == "" {
			t.Fatalf("correction for %q is empty", input)
		}
		if !utf8.ValidString(corrected) {
			t.Fatalf("correction for %q is not valid UTF-8: %q", input, corrected)
		}
		// The repair must be a fixed point: running it again finds
		// nothing left to fix.
		if again, ok := ident.VerifySymbol(corrected); !ok {
			t.Fatalf("correction %q of %q re-verifies to %q", corrected, input, again)
		}
	})
}

func FuzzClassifier(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		for _, r := range input {
			start := ident.IsValidStart(r)
			cont := ident.IsValidContinue(r)
			if start && !cont {
				t.Fatalf("%U may start an identifier but not continue one", r)
			}
			if r >= '0' && r <= '9' {
				if start {
					t.Fatalf("digit %q classified as a start character", r)
				}
				if !cont {
					t.Fatalf("digit %q rejected as a continue character", r)
				}
			}
			if r == '\u200c' || r == '\u200d' {
				if start || !cont {
					t.Fatalf("joiner %U must be continue-only (start=%v continue=%v)", r, start, cont)
				}
			}
		}
	})
}
