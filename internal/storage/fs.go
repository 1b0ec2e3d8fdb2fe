package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// OS implements FileOps backed by the local file system.
type OS struct{}

// NewOS returns the real file-system implementation.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether path exists, following symlinks.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory, following symlinks.
func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirAll creates path with all missing parents.
func (OS) CreateDirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	return nil
}

// Move renames src to dst, refusing to replace an existing dst.
func (OS) Move(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("storage: move: %w", err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("storage: move: %w", &fs.PathError{Op: "move", Path: dst, Err: fs.ErrExist})
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: move: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("storage: move: %w", err)
	}
	return nil
}

// AppendBytes opens path for append (creating it if needed) and writes data.
func (OS) AppendBytes(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644) //nolint:gosec // user-selected archive path
	if err != nil {
		return fmt.Errorf("storage: open for append: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: close: %w", cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("storage: append: %w", err)
	}
	return nil
}
