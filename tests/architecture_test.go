package architecture_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const projectImportPath = "github.com/rafaelleal24/orderplacement"

type importRef struct {
	file     string
	path     string
	position token.Position
}

func TestArchitecturalRules(t *testing.T) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		t.Fatal("Failed to find project root:", err)
	}

	imports, err := collectImports(projectRoot)
	if err != nil {
		t.Fatal("Failed to walk through project files:", err)
	}
	if len(imports) == 0 {
		t.Fatal("no project imports found")
	}

	for _, imp := range imports {
		if isViolation(imp.file, imp.path) {
			t.Errorf("ARCHITECTURE VIOLATION at %v: %s imports %s", imp.position, imp.file, imp.path)
		}
	}
}

// collectImports lists the imports of every non-test Go file under root,
// skipping directories that start with an underscore.
func collectImports(root string) ([]importRef, error) {
	var refs []importRef

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		for _, imp := range node.Imports {
			refs = append(refs, importRef{
				file:     relPath,
				path:     strings.Trim(imp.Path.Value, "\""),
				position: fset.Position(imp.Pos()),
			})
		}
		return nil
	})

	return refs, err
}

func TestIsViolation(t *testing.T) {
	tests := []struct {
		file     string
		imp      string
		violates bool
	}{
		{"internal/core/domain/order.go", projectImportPath + "/internal/core/port", true},
		{"internal/core/port/order.go", projectImportPath + "/internal/core/domain", false},
		{"internal/core/service/order.go", projectImportPath + "/internal/adapters/redis", true},
		{"internal/adapters/http/router.go", projectImportPath + "/internal/adapters/config", false},
		{"internal/adapters/http/router.go", projectImportPath + "/internal/adapters/mongo", true},
		{"internal/adapters/cli/root.go", projectImportPath + "/internal/adapters/mongo/repository", true},
		{"internal/adapters/cli/root.go", projectImportPath + "/internal/core/service", false},
		{"cmd/cli/main.go", projectImportPath + "/internal/adapters/mongo", false},
		{"internal/adapters/redis/ratelimit.go", "github.com/redis/go-redis/v9", false},
	}

	for _, tt := range tests {
		t.Run(tt.file+" -> "+tt.imp, func(t *testing.T) {
			if got := isViolation(tt.file, tt.imp); got != tt.violates {
				t.Fatalf("expected violation=%v, got %v", tt.violates, got)
			}
		})
	}
}

func isViolation(filePath, importPath string) bool {
	if !strings.Contains(importPath, projectImportPath) {
		return false
	}

	internalImportPath := strings.TrimPrefix(importPath, projectImportPath)
	if !strings.HasPrefix(internalImportPath, "/") {
		internalImportPath = "/" + internalImportPath
	}

	// core/domain can only import third parties libs or golang libs
	if strings.Contains(filePath, "/core/domain") {
		return !strings.Contains(internalImportPath, "/core/domain")
	}

	// core/port can only import domain
	if strings.Contains(filePath, "/core/port") {
		return !strings.Contains(internalImportPath, "/core/domain") && !strings.Contains(internalImportPath, "/core/port")
	}

	//  core/* can only import from inside core
	if strings.Contains(filePath, "/core") &&
		!strings.Contains(filePath, "/core/domain") &&
		!strings.Contains(filePath, "/core/port") {

		return !strings.Contains(internalImportPath, "/core")
	}

	// inbound adapters cannot import other adapters packages outside of adapters/config

	prefixArr := []string{"/adapters/http", "/adapters/cli"}
	for _, prefix := range prefixArr {
		if strings.Contains(filePath, prefix) {
			if strings.Contains(internalImportPath, "/adapters") {
				return !strings.Contains(internalImportPath, "/adapters/config") &&
					!strings.Contains(internalImportPath, prefix)
			}
		}
	}

	return false
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {

			break
		}
		dir = parent
	}

	currentDir, _ := os.Getwd()
	return currentDir, nil
}
