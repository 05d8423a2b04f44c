package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/leapstack-labs/bashate"

// importsOf returns the imports of every non-test Go file in dir, keyed by
// file name.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[path] = append(imports[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
// The Golden Rule: every other package depends on core, never the reverse.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range importsOf(t, ".") {
		for _, importPath := range imports {
			// Stdlib paths have no dot in the first element
			if !strings.Contains(importPath, ".") {
				continue
			}
			t.Errorf("%s imports forbidden package: %s", file, importPath)
		}
	}
}

// TestPublicPackagesDoNotImportInternal verifies nothing under pkg/ reaches
// into the module's internal tree. The CLI wires pkg/, not the other way.
func TestPublicPackagesDoNotImportInternal(t *testing.T) {
	err := filepath.WalkDir("..", func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		if d.Name() == "testdata" {
			return filepath.SkipDir
		}
		for file, imports := range importsOf(t, path) {
			for _, importPath := range imports {
				if strings.HasPrefix(importPath, modulePath+"/internal/") {
					t.Errorf("%s imports internal package: %s", file, importPath)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

// TestLayering verifies the lower layers never import the layers built on
// top of them: source and token know nothing of scanning, the scanner knows
// nothing of rules, and rules know nothing of reporting.
func TestLayering(t *testing.T) {
	forbidden := map[string][]string{
		"../token":   {"/pkg/source", "/pkg/scanner", "/pkg/lint", "/pkg/report", "/pkg/syntax"},
		"../source":  {"/pkg/scanner", "/pkg/lint", "/pkg/report", "/pkg/syntax"},
		"../scanner": {"/pkg/lint", "/pkg/report", "/pkg/syntax"},
		"../syntax":  {"/pkg/scanner", "/pkg/lint", "/pkg/report"},
		"../lint":    {"/pkg/report"},
	}

	for dir, banned := range forbidden {
		for file, imports := range importsOf(t, dir) {
			for _, importPath := range imports {
				for _, suffix := range banned {
					if importPath == modulePath+suffix || strings.HasPrefix(importPath, modulePath+suffix+"/") {
						t.Errorf("%s imports %s (layer violation)", file, importPath)
					}
				}
			}
		}
	}
}
