package source

import (
	"sync"

	"fortio.org/safecast"
)

// Symbol is an interned identifier text. It is a cheap handle: copying
// and comparing symbols never touches the underlying string, and two
// symbols are equal exactly when their texts are equal, because the
// table deduplicates on insert.
//
// The table is process-wide, like the rest of the compiler expects:
// a symbol stays printable without threading an interner through every
// consumer. Reads and writes are safe from any goroutine.
type Symbol uint32

// NoSymbol is the interned empty string. The dummy identifier uses it.
const NoSymbol Symbol = 0

var symtab = struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]Symbol
}{
	byID:  []string{""}, // NoSymbol -> ""
	index: map[string]Symbol{"": NoSymbol},
}

// Intern inserts s into the symbol table and returns its handle.
// Interning the same text twice returns the same Symbol.
func Intern(s string) Symbol {
	symtab.mu.RLock()
	id, ok := symtab.index[s]
	symtab.mu.RUnlock()
	if ok {
		return id
	}

	symtab.mu.Lock()
	defer symtab.mu.Unlock()
	// Lost the race: someone interned s between the two locks.
	if id, ok := symtab.index[s]; ok {
		return id
	}

	// Own copy of the text, detached from the caller's buffer.
	cpy := string([]byte(s))
	next, err := safecast.Conv[uint32](len(symtab.byID))
	if err != nil {
		panic("symbol table overflow")
	}
	id = Symbol(next)
	symtab.byID = append(symtab.byID, cpy)
	symtab.index[cpy] = id
	return id
}

// InternBytes interns the byte slice as a string and returns its handle.
func InternBytes(b []byte) Symbol {
	return Intern(string(b))
}

// String returns the interned text. Unknown handles render as "".
func (s Symbol) String() string {
	symtab.mu.RLock()
	defer symtab.mu.RUnlock()
	if int(s) >= len(symtab.byID) {
		return ""
	}
	return symtab.byID[s]
}

// IsEmpty reports whether the symbol is the interned empty string.
func (s Symbol) IsEmpty() bool { return s == NoSymbol }

// SymbolCount returns the number of interned symbols, counting NoSymbol.
func SymbolCount() int {
	symtab.mu.RLock()
	defer symtab.mu.RUnlock()
	return len(symtab.byID)
}
