// Package storage defines the file-system abstraction used by slugpm commands.
package storage

// FileOps is the interface for every file-system query and mutation slugpm
// performs. Paths are used as given; callers resolve them first.
type FileOps interface {
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// CreateDirAll creates path and any missing parents. An existing
	// directory is not an error.
	CreateDirAll(path string) error
	// Move renames src to dst. It never replaces an existing dst and
	// requires dst's parent directory to exist.
	Move(src, dst string) error
	// AppendBytes appends data to the file at path, creating it if missing.
	AppendBytes(path string, data []byte) error
}
