package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

var (
	errNotDir = errors.New("not a directory")
	errIsDir  = errors.New("is a directory")
)

type entry struct {
	dir  bool
	data []byte
}

// Memory implements FileOps over an in-memory tree keyed by cleaned path.
// The root ("/") and the current directory (".") always exist.
type Memory struct {
	entries map[string]*entry
}

// NewMemory returns an empty in-memory file system.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*entry)}
}

// AddDir creates a directory and its parents.
func (m *Memory) AddDir(path string) error {
	return m.CreateDirAll(path)
}

// AddFile creates (or replaces) a regular file, creating its parents.
func (m *Memory) AddFile(path string, data []byte) error {
	p := filepath.Clean(path)
	if err := m.CreateDirAll(filepath.Dir(p)); err != nil {
		return err
	}
	if m.IsDir(p) {
		return &fs.PathError{Op: "write", Path: p, Err: errIsDir}
	}
	m.entries[p] = &entry{data: append([]byte(nil), data...)}
	return nil
}

// ReadFile returns a copy of the content of the file at path.
func (m *Memory) ReadFile(path string) ([]byte, error) {
	p := filepath.Clean(path)
	e, ok := m.entries[p]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}
	if e.dir {
		return nil, &fs.PathError{Op: "read", Path: p, Err: errIsDir}
	}
	return append([]byte(nil), e.data...), nil
}

// Paths returns every stored path in sorted order. Directories carry a
// trailing separator.
func (m *Memory) Paths() []string {
	out := make([]string, 0, len(m.entries))
	for p, e := range m.entries {
		if e.dir {
			p += string(filepath.Separator)
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Exists reports whether path is stored.
func (m *Memory) Exists(path string) bool {
	p := filepath.Clean(path)
	if isRoot(p) {
		return true
	}
	_, ok := m.entries[p]
	return ok
}

// IsDir reports whether path is a stored directory.
func (m *Memory) IsDir(path string) bool {
	p := filepath.Clean(path)
	if isRoot(p) {
		return true
	}
	e, ok := m.entries[p]
	return ok && e.dir
}

// CreateDirAll creates path and any missing parents.
func (m *Memory) CreateDirAll(path string) error {
	p := filepath.Clean(path)
	var chain []string
	for cur := p; !isRoot(cur); cur = filepath.Dir(cur) {
		chain = append(chain, cur)
	}
	// Validate the whole chain before creating anything.
	for _, c := range chain {
		if e, ok := m.entries[c]; ok && !e.dir {
			return fmt.Errorf("storage: mkdir: %w", &fs.PathError{Op: "mkdir", Path: c, Err: errNotDir})
		}
	}
	for _, c := range chain {
		if _, ok := m.entries[c]; !ok {
			m.entries[c] = &entry{dir: true}
		}
	}
	return nil
}

// Move renames src (and its subtree, for directories) to dst.
func (m *Memory) Move(src, dst string) error {
	s, d := filepath.Clean(src), filepath.Clean(dst)
	if !m.Exists(s) || isRoot(s) {
		return fmt.Errorf("storage: move: %w", &fs.PathError{Op: "move", Path: s, Err: fs.ErrNotExist})
	}
	if m.Exists(d) {
		return fmt.Errorf("storage: move: %w", &fs.PathError{Op: "move", Path: d, Err: fs.ErrExist})
	}
	if err := m.checkParent("move", d); err != nil {
		return err
	}
	prefix := s + string(filepath.Separator)
	if strings.HasPrefix(d, prefix) {
		return fmt.Errorf("storage: move: %w", &fs.PathError{Op: "move", Path: d, Err: fs.ErrInvalid})
	}

	var children []string
	for p := range m.entries {
		if strings.HasPrefix(p, prefix) {
			children = append(children, p)
		}
	}
	for _, p := range children {
		m.entries[filepath.Join(d, strings.TrimPrefix(p, prefix))] = m.entries[p]
		delete(m.entries, p)
	}
	m.entries[d] = m.entries[s]
	delete(m.entries, s)
	return nil
}

// AppendBytes appends data to the file at path, creating it if missing.
func (m *Memory) AppendBytes(path string, data []byte) error {
	p := filepath.Clean(path)
	if m.IsDir(p) {
		return fmt.Errorf("storage: open for append: %w", &fs.PathError{Op: "open", Path: p, Err: errIsDir})
	}
	if err := m.checkParent("open", p); err != nil {
		return err
	}
	e, ok := m.entries[p]
	if !ok {
		e = &entry{}
		m.entries[p] = e
	}
	e.data = append(e.data, data...)
	return nil
}

func (m *Memory) checkParent(op, path string) error {
	parent := filepath.Dir(path)
	if m.IsDir(parent) {
		return nil
	}
	err := fs.ErrNotExist
	if m.Exists(parent) {
		err = errNotDir
	}
	return fmt.Errorf("storage: %s: %w", op, &fs.PathError{Op: op, Path: path, Err: err})
}

func isRoot(p string) bool {
	return p == "." || p == string(filepath.Separator)
}
