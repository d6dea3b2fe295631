package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternBasic(t *testing.T) {
	// NoSymbol is reserved for the empty string.
	if s := NoSymbol.String(); s != "" {
		t.Errorf("NoSymbol should render as empty string, got %q", s)
	}
	if Intern("") != NoSymbol {
		t.Error("interning the empty string must return NoSymbol")
	}
	if !NoSymbol.IsEmpty() {
		t.Error("NoSymbol.IsEmpty() = false")
	}

	id1 := Intern("hello")
	if id1 == NoSymbol {
		t.Error("Intern must not return NoSymbol for a non-empty string")
	}
	if id1.IsEmpty() {
		t.Error("non-empty symbol reports IsEmpty")
	}

	// Same text, same handle.
	if id2 := Intern("hello"); id1 != id2 {
		t.Errorf("Intern must be stable for equal text: %d != %d", id1, id2)
	}

	if s := id1.String(); s != "hello" {
		t.Errorf("String() = %q, want %q", s, "hello")
	}

	if id3 := Intern("world"); id3 == id1 {
		t.Error("different texts must get different handles")
	}
}

func TestInternBytes(t *testing.T) {
	id1 := InternBytes([]byte("test"))
	id2 := Intern("test")

	if id1 != id2 {
		t.Errorf("InternBytes and Intern must agree for equal text: %d != %d", id1, id2)
	}
}

func TestInternCopiesBuffer(t *testing.T) {
	buf := []byte("mutated")
	id := InternBytes(buf)
	buf[0] = 'X'

	if s := id.String(); s != "mutated" {
		t.Errorf("interned text must not alias the caller's buffer, got %q", s)
	}
}

func TestInternConcurrent(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 200

	var wg sync.WaitGroup
	results := make([][]Symbol, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]Symbol, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				// Every goroutine interns the same set of names.
				ids = append(ids, Intern(fmt.Sprintf("concurrent-%d", i)))
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		for i := range results[g] {
			if results[g][i] != results[0][i] {
				t.Fatalf("goroutine %d got a different handle for name %d", g, i)
			}
		}
	}
}

func TestSymbolCount(t *testing.T) {
	before := SymbolCount()
	Intern("symbol-count-probe")
	if after := SymbolCount(); after != before+1 {
		t.Errorf("SymbolCount grew by %d, want 1", after-before)
	}
	// Re-interning must not grow the table.
	Intern("symbol-count-probe")
	if after := SymbolCount(); after != before+1 {
		t.Error("re-interning grew the table")
	}
}
