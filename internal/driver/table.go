package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"jolt/internal/ast"
)

// Current schema version - increment when Table format changes.
const tableSchemaVersion uint16 = 1

// Table is the exported identifier table: every usable (verified or
// repaired) name as a context-free identifier, plus the files it came
// from. Downstream tools re-intern symbols on load, so the file is
// portable across processes.
type Table struct {
	Schema  uint16
	Sources []string
	Idents  []ast.Ident
}

// BuildTable collects the usable identifiers from a set of reports.
func BuildTable(reports []*FileReport) *Table {
	t := &Table{Schema: tableSchemaVersion}
	for _, r := range reports {
		if r == nil {
			continue
		}
		t.Sources = append(t.Sources, r.Path)
		for _, res := range r.Names {
			t.Idents = append(t.Idents, res.Ident())
		}
	}
	return t
}

// WriteTable serializes the table to path, atomically replacing any
// existing file.
func (t *Table) WriteTable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", rmErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(t); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), path)
}

// ReadTable deserializes a table written by WriteTable.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close %s: %v\n", path, closeErr)
		}
	}()

	var t Table
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if t.Schema != tableSchemaVersion {
		return nil, fmt.Errorf("%s: unsupported table schema %d (want %d)", path, t.Schema, tableSchemaVersion)
	}
	return &t, nil
}
