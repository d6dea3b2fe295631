package ident

import "testing"

func TestIsReserved(t *testing.T) {
	for _, w := range []string{
		"break", "case", "class", "const", "enum", "false", "function",
		"if", "import", "instanceof", "new", "null", "package", "super",
		"this", "true", "typeof", "var", "while", "with",
	} {
		if !IsReserved(w) {
			t.Errorf("IsReserved(%q) = false", w)
		}
	}

	// Case-sensitive, exact match.
	for _, w := range []string{"Break", "IF", "truthy", "le", "lets", ""} {
		if IsReserved(w) {
			t.Errorf("IsReserved(%q) = true", w)
		}
	}
}

func TestIsReservedInStrictMode(t *testing.T) {
	for _, w := range []string{
		"implements", "interface", "let", "package", "private",
		"protected", "public", "static", "yield",
	} {
		if !IsReservedInStrictMode(w, false) {
			t.Errorf("IsReservedInStrictMode(%q, false) = false", w)
		}
	}

	// "await" is reserved only for module units. Non-module strict
	// code does not reserve it here; that policy belongs to the
	// resolver.
	if IsReservedInStrictMode("await", false) {
		t.Error("await must not be strict-reserved outside modules")
	}
	if !IsReservedInStrictMode("await", true) {
		t.Error("await must be reserved in modules")
	}

	if IsReservedInStrictMode("break", false) {
		t.Error("the strict layer must not duplicate the base layer")
	}
}

func TestIsReservedInStrictBind(t *testing.T) {
	if !IsReservedInStrictBind("eval") || !IsReservedInStrictBind("arguments") {
		t.Error("eval and arguments are strict-bind reserved")
	}
	for _, w := range []string{"Eval", "argument", "let", ""} {
		if IsReservedInStrictBind(w) {
			t.Errorf("IsReservedInStrictBind(%q) = true", w)
		}
	}
}

func TestIsReservedInES3(t *testing.T) {
	for _, w := range []string{"abstract", "boolean", "goto", "int", "volatile"} {
		if !IsReservedInES3(w) {
			t.Errorf("IsReservedInES3(%q) = false", w)
		}
	}
	// Modern-only words stay out of the legacy table.
	for _, w := range []string{"let", "yield", "await", "class"} {
		if IsReservedInES3(w) {
			t.Errorf("IsReservedInES3(%q) = true", w)
		}
	}
}

func TestReservedLayersAreDisjointEnough(t *testing.T) {
	// Words from the strict layer must be usable in sloppy mode, so
	// they cannot also sit in the unconditional set ("package" is the
	// historical exception carried by both lists).
	for w := range reservedInStrictMode {
		if w != "package" && IsReserved(w) {
			t.Errorf("%q appears in both the base and strict layers", w)
		}
	}
}
