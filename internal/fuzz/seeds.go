package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

const maxSeedBytes = 4 << 10 // 4 KiB cap for the test corpus

var inlineSeeds = []string{
	"",
	"x",
	"_",
	"$",
	"valid_name1",
	"true",
	"await",
	"eval",
	"1abc",
	"foo-bar",
	"#private",
	"a\u200cb",
	"a\u200db",
	"\u0301tail",
	"\u00e9clair",
	"\U0001f4a5",
	string([]byte{0xff, 0xfe, 0x41}),
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add(s)
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".names" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil || len(src) > maxSeedBytes {
			return nil
		}
		if !utf8.Valid(src) {
			return nil
		}
		f.Add(string(src))
		return nil
	})
	if err != nil {
		f.Logf("testdata walk: %v", err)
	}
}
