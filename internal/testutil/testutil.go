// Package testutil provides shared test helpers for seeding file systems.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/slugpm/internal/storage"
)

// MemoryFS returns an in-memory FileOps holding dirs and files
// (path -> content). Parents are created as needed.
func MemoryFS(t *testing.T, files map[string]string, dirs ...string) *storage.Memory {
	t.Helper()
	m := storage.NewMemory()
	for _, d := range dirs {
		if err := m.AddDir(d); err != nil {
			t.Fatalf("seed dir %s: %v", d, err)
		}
	}
	for p, c := range files {
		if err := m.AddFile(p, []byte(c)); err != nil {
			t.Fatalf("seed file %s: %v", p, err)
		}
	}
	return m
}

// TempTree creates files (relative path -> content) under a fresh temporary
// directory and returns its path.
func TempTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, c := range files {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}
