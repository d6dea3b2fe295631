// Package hygiene provides the syntax-context tags that keep
// same-spelled identifiers from different lexical scopes apart.
//
// A context is an opaque token, not a scope object: the resolver mints
// a fresh tag per scope and stamps it onto identifiers, and everything
// downstream compares (symbol, context) pairs instead of walking a
// scope graph. The mapping from tags back to scope information lives
// with the resolver, keyed by tag.
package hygiene

import (
	"fmt"
	"sync/atomic"
)

// SyntaxContext distinguishes identifiers with the same symbol.
// Two contexts are equal iff the resolver produced them as the same
// scope. The notation for a context is #n, e.g. foo#1.
type SyntaxContext uint32

// NoContext marks identifiers that are not yet resolved or are
// intentionally unscoped. Freshly parsed identifiers carry it.
const NoContext SyntaxContext = 0

// IsValid reports whether the context refers to an allocated scope tag.
func (c SyntaxContext) IsValid() bool { return c != NoContext }

func (c SyntaxContext) String() string {
	return fmt.Sprintf("#%d", uint32(c))
}

// Allocator mints fresh syntax contexts. The zero value is ready to
// use and never returns NoContext.
type Allocator struct {
	last atomic.Uint32
}

// Fresh returns a context that has never been returned by this
// allocator before. Safe for concurrent use.
func (a *Allocator) Fresh() SyntaxContext {
	return SyntaxContext(a.last.Add(1))
}

var global Allocator

// Fresh mints a context from the process-wide allocator. All resolver
// passes in a process share it, so tags never collide across files.
func Fresh() SyntaxContext {
	return global.Fresh()
}
