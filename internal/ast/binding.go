package ast

import (
	"fmt"

	"jolt/internal/source"
)

// TypeAnn is a type annotation attached to a binding. The annotation
// grammar belongs to the parser; the identifier core only carries the
// node through, as a span plus the rendered type text.
type TypeAnn struct {
	Span source.Span
	Type source.Symbol
}

// BindingIdent is an identifier in binding position, optionally
// decorated with a type annotation. It owns its embedded Ident and
// delegates all identity behavior to it.
type BindingIdent struct {
	Ident   Ident
	TypeAnn *TypeAnn
}

// BindIdent wraps a plain identifier as a binding occurrence with no
// annotation.
func BindIdent(id Ident) BindingIdent {
	return BindingIdent{Ident: id}
}

// ToIdent converts back to a plain expression-position identifier.
// The type annotation is dropped; the conversion is lossy and one-way.
func (b BindingIdent) ToIdent() Ident {
	return b.Ident
}

// ToID extracts the identity key of the embedded identifier.
func (b BindingIdent) ToID() ID {
	return b.Ident.ToID()
}

// EqIgnoreSpan compares the embedded identifiers, annotation excluded.
func (b BindingIdent) EqIgnoreSpan(other BindingIdent) bool {
	return b.Ident.EqIgnoreSpan(other.Ident)
}

// IsDummy reports whether the embedded identifier is the placeholder.
func (b BindingIdent) IsDummy() bool {
	return b.Ident.IsDummy()
}

func (b BindingIdent) String() string {
	return b.Ident.String()
}

// DummyBinding returns the placeholder binding identifier.
func DummyBinding() BindingIdent {
	return BindingIdent{Ident: Dummy()}
}

// PrivateName is a class-private field or method name, the #name after
// the hash. It is deliberately a distinct type: private names are
// restricted to member-access and class-body positions, so they never
// interchange with Ident or BindingIdent even though the shape is the
// same. The embedded identifier holds the name without the hash.
type PrivateName struct {
	Span  source.Span
	Ident Ident
}

// EqIgnoreSpan compares the embedded identifiers.
func (p PrivateName) EqIgnoreSpan(other PrivateName) bool {
	return p.Ident.EqIgnoreSpan(other.Ident)
}

func (p PrivateName) String() string {
	return fmt.Sprintf("#%s", p.Ident.Text())
}
