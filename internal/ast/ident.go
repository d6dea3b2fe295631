// Package ast holds the identifier value types of the front end: the
// spanned, hygiene-tagged Ident, its compact identity key ID, and the
// binding/private variants.
package ast

import (
	"fmt"
	"sync/atomic"

	"jolt/internal/hygiene"
	"jolt/internal/source"
)

// Ident is a complete identifier with a span.
//
// An identifier is two things: Sym, the interned text, and Ctxt, a
// syntax context that tells same-spelled bindings apart. Given
//
//	let a = 5
//	{
//	    let a = 3;
//	}
//
// both variables spell "a". Instead of threading nested scope objects
// through the tree, the resolver stamps each with a different context,
// rendered as #n:
//
//	let a#1 = 5
//	{
//	    let a#2 = 3;
//	}
//
// Two identifiers denote the same binding iff both Sym and Ctxt are
// equal; Span and Optional never participate in identity. For map keys
// and comparisons use ToID.
//
// Ident is a comparable struct: == and map-key hashing give the exact
// structural contract (symbol, span, context, optional flag).
type Ident struct {
	Span source.Span
	Ctxt hygiene.SyntaxContext
	Sym  source.Symbol

	// Optional marks a TypeScript optional parameter. No bearing on
	// identity or hygiene.
	Optional bool
}

// New constructs an identifier with no syntax context. The parser
// creates every identifier this way; the resolver assigns contexts
// later, in place.
func New(sym source.Symbol, span source.Span) Ident {
	return Ident{Span: span, Sym: sym, Ctxt: hygiene.NoContext}
}

// FromText interns s and builds an identifier with the dummy span.
// Convenience for tests and synthesized names.
func FromText(s string) Ident {
	return New(source.Intern(s), source.DummySpan)
}

// Dummy returns the canonical placeholder identifier: empty symbol,
// dummy span, no context.
func Dummy() Ident {
	return New(source.NoSymbol, source.DummySpan)
}

// IsDummy reports whether the identifier is the canonical placeholder.
func (i Ident) IsDummy() bool {
	return i.Sym.IsEmpty() && i.Span.IsDummy()
}

// Text returns the raw symbol text, for emission.
func (i Ident) Text() string {
	return i.Sym.String()
}

// ToID extracts the (symbol, context) identity key.
func (i Ident) ToID() ID {
	return ID{Sym: i.Sym, Ctxt: i.Ctxt}
}

// WithoutLoc clears the span to the dummy position while preserving
// symbol and context. Used when an identifier is stored or compared
// independent of where it appeared.
func (i Ident) WithoutLoc() Ident {
	i.Span = source.DummySpan
	return i
}

// String renders the symbol followed by the context debug form, so two
// same-named identifiers from different scopes print differently:
// foo#1 vs foo#2.
func (i Ident) String() string {
	return fmt.Sprintf("%s%s", i.Sym, i.Ctxt)
}

// ID is the minimal identity key of an identifier: the (symbol,
// context) pair with span and flags dropped. Comparable; meant as the
// map key for symbol tables.
type ID struct {
	Sym  source.Symbol
	Ctxt hygiene.SyntaxContext
}

// Ident reconstructs a full identifier from the key. The span becomes
// the dummy position.
func (id ID) Ident() Ident {
	i := New(id.Sym, source.DummySpan)
	i.Ctxt = id.Ctxt
	return i
}

func (id ID) String() string {
	return fmt.Sprintf("%s%s", id.Sym, id.Ctxt)
}

// eqIgnoreSpanIgnoresCtxt is the cooperative override consulted by
// Ident.EqIgnoreSpan. It is set only inside WithinIgnoredCtxt scopes.
var eqIgnoreSpanIgnoresCtxt atomic.Bool

// WithinIgnoredCtxt runs op with hygiene-insensitive EqIgnoreSpan:
// inside op, identifiers with equal symbols compare equal regardless
// of syntax context. The previous flag value is restored when op
// returns, including on panic, so a scope can never leak. Nested
// scopes are idempotent.
//
// The override is process-cooperative, not goroutine-local: do not run
// hygiene-sensitive comparison passes concurrently with an ignored
// scope.
func WithinIgnoredCtxt(op func()) {
	prev := eqIgnoreSpanIgnoresCtxt.Swap(true)
	defer eqIgnoreSpanIgnoresCtxt.Store(prev)
	op()
}

// EqIgnoreSpan reports whether the two identifiers are equal ignoring
// their positions: symbols must match, and contexts must match unless
// a WithinIgnoredCtxt scope is active. Structural AST diffing across
// re-parses uses the ignored scope, because contexts are not stable
// between parses.
func (i Ident) EqIgnoreSpan(other Ident) bool {
	if i.Sym != other.Sym {
		return false
	}
	if i.Ctxt == other.Ctxt {
		return true
	}
	return eqIgnoreSpanIgnoresCtxt.Load()
}
