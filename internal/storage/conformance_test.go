package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// fixture gives each conformance case an empty root plus seeding and
// inspection helpers for one FileOps implementation.
type fixture struct {
	ops   FileOps
	root  string
	file  func(t *testing.T, rel, content string)
	dir   func(t *testing.T, rel string)
	read  func(rel string) (string, error)
	label string
}

func (f fixture) path(rel string) string { return filepath.Join(f.root, rel) }

func osFixture(t *testing.T) fixture {
	root := t.TempDir()
	return fixture{
		ops:  NewOS(),
		root: root,
		file: func(t *testing.T, rel, content string) {
			writeFile(t, filepath.Join(root, rel), content)
		},
		dir: func(t *testing.T, rel string) {
			if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		},
		read: func(rel string) (string, error) {
			b, err := os.ReadFile(filepath.Join(root, rel))
			return string(b), err
		},
		label: "os",
	}
}

func memoryFixture(t *testing.T) fixture {
	m := NewMemory()
	root := "/vault"
	if err := m.AddDir(root); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	return fixture{
		ops:  m,
		root: root,
		file: func(t *testing.T, rel, content string) {
			if err := m.AddFile(filepath.Join(root, rel), []byte(content)); err != nil {
				t.Fatalf("AddFile: %v", err)
			}
		},
		dir: func(t *testing.T, rel string) {
			if err := m.AddDir(filepath.Join(root, rel)); err != nil {
				t.Fatalf("AddDir: %v", err)
			}
		},
		read: func(rel string) (string, error) {
			b, err := m.ReadFile(filepath.Join(root, rel))
			return string(b), err
		},
		label: "memory",
	}
}

func eachFileOps(t *testing.T, fn func(t *testing.T, f fixture)) {
	t.Helper()
	for _, mk := range []func(*testing.T) fixture{osFixture, memoryFixture} {
		f := mk(t)
		t.Run(f.label, func(t *testing.T) { fn(t, f) })
	}
}

func TestConformance_MoveMissingSource(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		err := f.ops.Move(f.path("nope.txt"), f.path("dst.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})
}

func TestConformance_MoveOntoExisting(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		f.file(t, "a.txt", "a")
		f.file(t, "b.txt", "b")
		err := f.ops.Move(f.path("a.txt"), f.path("b.txt"))
		if !errors.Is(err, fs.ErrExist) {
			t.Fatalf("err = %v, want ErrExist", err)
		}
		if got, _ := f.read("b.txt"); got != "b" {
			t.Errorf("destination = %q, want untouched", got)
		}
		if !f.ops.Exists(f.path("a.txt")) {
			t.Error("source should remain")
		}
	})
}

func TestConformance_MoveMissingParent(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		f.file(t, "a.txt", "a")
		if err := f.ops.Move(f.path("a.txt"), f.path("no/such/a.txt")); err == nil {
			t.Fatal("expected error when destination parent is missing")
		}
		if !f.ops.Exists(f.path("a.txt")) {
			t.Error("source should remain")
		}
	})
}

func TestConformance_MoveDirectoryTree(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		f.file(t, "src/tree/inner/leaf.txt", "leaf")
		f.dir(t, "dst")
		if err := f.ops.Move(f.path("src/tree"), f.path("dst/tree")); err != nil {
			t.Fatalf("Move: %v", err)
		}
		if got, err := f.read("dst/tree/inner/leaf.txt"); err != nil || got != "leaf" {
			t.Errorf("moved leaf = %q, %v", got, err)
		}
		if f.ops.Exists(f.path("src/tree")) || f.ops.Exists(f.path("src/tree/inner/leaf.txt")) {
			t.Error("source tree should be gone")
		}
		if !f.ops.IsDir(f.path("dst/tree/inner")) {
			t.Error("inner directory should move with its parent")
		}
	})
}

func TestConformance_MoveIntoOwnSubtree(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		f.dir(t, "d/sub")
		if err := f.ops.Move(f.path("d"), f.path("d/sub/d")); err == nil {
			t.Error("expected error moving a directory into itself")
		}
	})
}

func TestConformance_AppendCreatesAndAccumulates(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		p := f.path("log.txt")
		if err := f.ops.AppendBytes(p, []byte("log\n")); err != nil {
			t.Fatalf("AppendBytes: %v", err)
		}
		if err := f.ops.AppendBytes(p, []byte("more\n")); err != nil {
			t.Fatalf("AppendBytes: %v", err)
		}
		if got, _ := f.read("log.txt"); got != "log\nmore\n" {
			t.Errorf("content = %q", got)
		}
		if f.ops.IsDir(p) {
			t.Error("appended path should be a file")
		}
	})
}

func TestConformance_AppendToDirectory(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		f.dir(t, "d")
		if err := f.ops.AppendBytes(f.path("d"), []byte("x")); err == nil {
			t.Error("expected error appending to a directory")
		}
	})
}

func TestConformance_AppendMissingParent(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		if err := f.ops.AppendBytes(f.path("no/log.txt"), []byte("x")); err == nil {
			t.Error("expected error when parent is missing")
		}
		if f.ops.Exists(f.path("no")) {
			t.Error("append must not create parent directories")
		}
	})
}

func TestConformance_CreateDirAll(t *testing.T) {
	eachFileOps(t, func(t *testing.T, f fixture) {
		p := f.path("a/b/c")
		if err := f.ops.CreateDirAll(p); err != nil {
			t.Fatalf("CreateDirAll: %v", err)
		}
		if err := f.ops.CreateDirAll(p); err != nil {
			t.Fatalf("CreateDirAll on existing dir: %v", err)
		}
		if !f.ops.IsDir(f.path("a/b")) {
			t.Error("intermediate directory missing")
		}

		f.file(t, "file", "x")
		if err := f.ops.CreateDirAll(f.path("file/sub")); err == nil {
			t.Error("expected error creating a directory below a file")
		}
	})
}
