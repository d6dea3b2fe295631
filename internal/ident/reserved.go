package ident

// Reserved-word tables. Case-sensitive exact-match sets, layered by
// dialect/mode: always reserved, strict-mode only, strict binding
// positions only, and the legacy ES3 list kept for compatibility-mode
// validation. Immutable after init, safe for concurrent reads.

var reserved = map[string]struct{}{
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"extends":    {},
	"false":      {},
	"finally":    {},
	"for":        {},
	"function":   {},
	"if":         {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"new":        {},
	"null":       {},
	"package":    {},
	"return":     {},
	"super":      {},
	"switch":     {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"typeof":     {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},
}

var reservedInStrictMode = map[string]struct{}{
	"implements": {},
	"interface":  {},
	"let":        {},
	"package":    {},
	"private":    {},
	"protected":  {},
	"public":     {},
	"static":     {},
	"yield":      {},
}

var reservedInES3 = map[string]struct{}{
	"abstract":     {},
	"boolean":      {},
	"byte":         {},
	"char":         {},
	"double":       {},
	"final":        {},
	"float":        {},
	"goto":         {},
	"int":          {},
	"long":         {},
	"native":       {},
	"short":        {},
	"synchronized": {},
	"throws":       {},
	"transient":    {},
	"volatile":     {},
}

// IsReserved reports whether s is unconditionally reserved.
func IsReserved(s string) bool {
	_, ok := reserved[s]
	return ok
}

// IsReservedInStrictMode reports whether s is reserved under strict
// semantics. Module code is always strict and additionally reserves
// "await" because of top-level-await; non-module strict code does not
// reserve it here, that policy belongs to the resolver.
func IsReservedInStrictMode(s string, isModule bool) bool {
	if isModule && s == "await" {
		return true
	}
	_, ok := reservedInStrictMode[s]
	return ok
}

// IsReservedInStrictBind reports whether s is illegal as a binding
// target in strict mode. "eval" and "arguments" stay legal as ordinary
// references.
func IsReservedInStrictBind(s string) bool {
	return s == "eval" || s == "arguments"
}

// IsReservedInES3 reports whether s was reserved by the legacy ES3
// specification.
func IsReservedInES3(s string) bool {
	_, ok := reservedInES3[s]
	return ok
}
