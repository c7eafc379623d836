package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestCgoOnlyInBackend walks the module tree and fails when a file outside
// the backend imports "C". Build constraints are ignored so native-only
// files are checked as well.
func TestCgoOnlyInBackend(t *testing.T) {
	root := filepath.Join("..", "..", "..")
	backend := filepath.Join("pkg", "meos", "internal", "backend")

	var findings []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			if rel != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasPrefix(rel, backend+string(filepath.Separator)) {
			return nil
		}
		f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}
		for _, imp := range f.Imports {
			if p, _ := strconv.Unquote(imp.Path.Value); p == "C" {
				findings = append(findings, rel)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk module: %v", err)
	}

	if len(findings) > 0 {
		t.Fatalf("cgo used outside %s:\n%s", backend, strings.Join(findings, "\n"))
	}
}
