// Package driver orchestrates identifier verification for the CLI:
// loading candidate-name files, fanning verification out across files,
// and exporting the resulting identifier table.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"jolt/internal/ast"
	"jolt/internal/ident"
	"jolt/internal/source"
)

// ReservedFlags records which reserved-word layers a name trips.
type ReservedFlags uint8

const (
	ReservedAlways ReservedFlags = 1 << iota
	ReservedStrict
	ReservedStrictBind
	ReservedES3
)

// Strings returns textual labels for the set flags.
func (f ReservedFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&ReservedAlways != 0 {
		labels = append(labels, "reserved")
	}
	if f&ReservedStrict != 0 {
		labels = append(labels, "strict")
	}
	if f&ReservedStrictBind != 0 {
		labels = append(labels, "strict-bind")
	}
	if f&ReservedES3 != 0 {
		labels = append(labels, "es3")
	}
	return labels
}

// Options controls verification.
type Options struct {
	// Module reports "await" under the strict layer, the way module
	// code reserves it. It affects classification only; the repair
	// pipeline always assumes module-strict rules.
	Module bool
	// ES3 includes the legacy ES3 reserved layer in classification.
	ES3 bool
	// NFC normalizes candidate names before verification. Source text
	// is conventionally assumed NFC already; name lists from other
	// tools may not be.
	NFC bool
}

// Result is the verification outcome for a single candidate name.
type Result struct {
	Name      string
	OK        bool
	Corrected string // repaired candidate when !OK
	Reserved  ReservedFlags
	Span      source.Span // dummy for names not read from a file
}

// Ident builds the identifier this result contributes to the exported
// table: the usable symbol with the name's span and no context.
func (r Result) Ident() ast.Ident {
	text := r.Name
	if !r.OK {
		text = r.Corrected
	}
	id := ast.New(source.Intern(text), r.Span)
	return id
}

// FileReport is the verification outcome for one candidate-name file.
type FileReport struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Names   []Result
}

func classify(name string, opts Options) ReservedFlags {
	var f ReservedFlags
	if ident.IsReserved(name) {
		f |= ReservedAlways
	}
	if ident.IsReservedInStrictMode(name, opts.Module) {
		f |= ReservedStrict
	}
	if ident.IsReservedInStrictBind(name) {
		f |= ReservedStrictBind
	}
	if opts.ES3 && ident.IsReservedInES3(name) {
		f |= ReservedES3
	}
	return f
}

// VerifyName verifies a single candidate with a dummy span.
func VerifyName(name string, opts Options) Result {
	if opts.NFC {
		name = norm.NFC.String(name)
	}
	corrected, ok := ident.VerifySymbol(name)
	return Result{
		Name:      name,
		OK:        ok,
		Corrected: corrected,
		Reserved:  classify(name, opts),
		Span:      source.DummySpan,
	}
}

// VerifyNames verifies names given directly (CLI arguments), in order.
func VerifyNames(names []string, opts Options) []Result {
	out := make([]Result, 0, len(names))
	for _, n := range names {
		out = append(out, VerifyName(n, opts))
	}
	return out
}

// VerifyFile loads a newline-separated candidate-name file and
// verifies every non-blank line. Lines starting with "#" are comments.
// Spans point at the name's bytes inside the file.
func VerifyFile(path string, opts Options) (*FileReport, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	report := &FileReport{Path: file.Path, FileID: fileID, FileSet: fs}

	lineStart := 0
	content := file.Content
	for lineStart <= len(content) {
		lineEnd := lineStart
		for lineEnd < len(content) && content[lineEnd] != '\n' {
			lineEnd++
		}
		line := string(content[lineStart:lineEnd])

		name := strings.TrimSpace(line)
		if name != "" && !strings.HasPrefix(name, "#") {
			lead := strings.Index(line, name)
			start, err := safecast.Conv[uint32](lineStart + lead)
			if err != nil {
				return nil, fmt.Errorf("offset overflow in %s: %w", path, err)
			}
			end, err := safecast.Conv[uint32](lineStart + lead + len(name))
			if err != nil {
				return nil, fmt.Errorf("offset overflow in %s: %w", path, err)
			}
			res := VerifyName(name, opts)
			res.Span = source.Span{File: fileID, Start: start, End: end}
			report.Names = append(report.Names, res)
		}

		lineStart = lineEnd + 1
	}

	return report, nil
}

// VerifyFiles verifies several candidate-name files concurrently.
// Reports come back in input order; the first load error cancels the
// remaining work.
func VerifyFiles(ctx context.Context, paths []string, opts Options) ([]*FileReport, error) {
	reports := make([]*FileReport, len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := VerifyFile(path, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
