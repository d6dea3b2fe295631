package ident

import "strings"

// isReservedSymbol is the combined test VerifySymbol uses: a synthetic
// name must survive the strictest common mode, so module-strict rules
// and strict binding rules apply on top of the unconditional set.
func isReservedSymbol(s string) bool {
	return IsReserved(s) || IsReservedInStrictMode(s, true) || IsReservedInStrictBind(s)
}

// VerifySymbol checks that s is a legal, non-reserved identifier.
// ok is true when s can be used as-is; the check is a single linear
// scan and never allocates.
//
// Otherwise corrected holds a repaired candidate:
//   - a reserved but otherwise valid s gets a "_" prefix;
//   - everything else is filtered, keeping the first valid-start
//     character and every valid-continue character after it (invalid
//     characters are dropped, not replaced);
//   - an empty result becomes "_";
//   - a filtered result that collides with a reserved word gets a "_"
//     prefix.
//
// The correction always verifies clean: VerifySymbol(corrected) is ok.
func VerifySymbol(s string) (corrected string, ok bool) {
	if isReservedSymbol(s) {
		return "_" + s, false
	}

	valid := false
	for i, r := range s {
		if i == 0 {
			valid = IsValidStart(r)
		} else if !IsValidContinue(r) {
			valid = false
		}
		if !valid {
			break
		}
	}
	if valid && s != "" {
		return "", true
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2)
	hasStart := false

	for _, r := range s {
		if !hasStart && IsValidStart(r) {
			hasStart = true
			buf.WriteRune(r)
			continue
		}
		if hasStart && IsValidContinue(r) {
			buf.WriteRune(r)
		}
	}

	out := buf.String()
	if out == "" {
		out = "_"
	}
	if isReservedSymbol(out) {
		out = "_" + out
	}
	return out, false
}
