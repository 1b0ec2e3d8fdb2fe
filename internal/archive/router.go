// Package archive decides where archived files and directories go and
// performs the move or append.
//
// A file is archived beside itself:
//
//	a/b/notes.txt -> a/b/archive/notes.txt
//
// A directory is archived one level higher, beside its parent:
//
//	a/b/mydir -> a/archive/mydir
package archive

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/starford/slugpm/internal/apperr"
	"github.com/starford/slugpm/internal/storage"
)

// DefaultDirName is the name of the archive folder.
const DefaultDirName = "archive"

// Operation is the mutation applied to an archive target.
type Operation int

const (
	// OpMove renames the source into the archive folder.
	OpMove Operation = iota
	// OpAppendStdin appends standard input to the archived copy of a file,
	// leaving the source in place.
	OpAppendStdin
)

func (o Operation) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpAppendStdin:
		return "append"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Target is a resolved archive decision.
type Target struct {
	Source      string
	ArchiveDir  string
	Destination string
	Operation   Operation
}

// FileArchiveDir returns the archive folder for a file whose parent
// directory is parent.
func FileArchiveDir(parent, name string) string {
	return filepath.Join(parent, name)
}

// DirArchiveDir returns the archive folder for a directory whose parent
// directory is parent: the folder sits beside parent, not inside it.
func DirArchiveDir(parent, name string) string {
	return filepath.Join(filepath.Dir(parent), name)
}

// Router resolves and applies archive targets through a FileOps.
type Router struct {
	ops     storage.FileOps
	dirName string
}

// NewRouter creates a Router. An empty dirName selects DefaultDirName.
func NewRouter(ops storage.FileOps, dirName string) *Router {
	if dirName == "" {
		dirName = DefaultDirName
	}
	return &Router{ops: ops, dirName: dirName}
}

// Resolve computes the archive target for path without touching the file
// system beyond existence checks.
func (r *Router) Resolve(path string, appendMode bool) (Target, error) {
	src := filepath.Clean(path)
	if !r.ops.Exists(src) {
		return Target{}, fmt.Errorf("%w: %s", apperr.ErrNotFound, src)
	}

	t := Target{Source: src, Operation: OpMove}
	parent := filepath.Dir(src)
	if r.ops.IsDir(src) {
		if appendMode {
			return Target{}, fmt.Errorf("%w: append mode requires a file, %s is a directory", apperr.ErrInvalidInput, src)
		}
		t.ArchiveDir = DirArchiveDir(parent, r.dirName)
	} else {
		t.ArchiveDir = FileArchiveDir(parent, r.dirName)
	}
	if appendMode {
		t.Operation = OpAppendStdin
	}
	t.Destination = filepath.Join(t.ArchiveDir, filepath.Base(src))
	return t, nil
}

// Apply performs t. For OpAppendStdin, stdin is read to completion before
// any mutation.
func (r *Router) Apply(t Target, stdin io.Reader) error {
	if t.Operation != OpMove && t.Operation != OpAppendStdin {
		return fmt.Errorf("%w: unknown operation %s", apperr.ErrInvalidInput, t.Operation)
	}

	var payload []byte
	if t.Operation == OpAppendStdin {
		if stdin == nil {
			return fmt.Errorf("%w: no standard input", apperr.ErrAppendFailed)
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("%w: reading standard input: %w", apperr.ErrAppendFailed, err)
		}
		payload = data
	}

	if err := r.ops.CreateDirAll(t.ArchiveDir); err != nil {
		return fmt.Errorf("%w: %s: %w", apperr.ErrCreateFailed, t.ArchiveDir, err)
	}

	switch t.Operation {
	case OpMove:
		if err := r.ops.Move(t.Source, t.Destination); err != nil {
			return fmt.Errorf("%w: %s -> %s: %w", apperr.ErrMoveFailed, t.Source, t.Destination, err)
		}
	case OpAppendStdin:
		if err := r.ops.AppendBytes(t.Destination, payload); err != nil {
			return fmt.Errorf("%w: %s: %w", apperr.ErrAppendFailed, t.Destination, err)
		}
	}
	return nil
}

// Archive resolves path and applies the result.
func (r *Router) Archive(path string, appendMode bool, stdin io.Reader) (Target, error) {
	t, err := r.Resolve(path, appendMode)
	if err != nil {
		return Target{}, err
	}
	if err := r.Apply(t, stdin); err != nil {
		return t, err
	}
	return t, nil
}
