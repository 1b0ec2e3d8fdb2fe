// Package project creates project directories named after slugified titles.
package project

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/slugpm/internal/apperr"
	"github.com/starford/slugpm/internal/naming"
	"github.com/starford/slugpm/internal/slug"
	"github.com/starford/slugpm/internal/storage"
)

// DefaultRoot is the directory new projects are created under.
const DefaultRoot = "project"

// ResolveTitle picks the project title. Positional args win and are joined
// with single spaces. Without args the first non-blank line of stdin is
// used, but only when stdin is not an interactive terminal.
func ResolveTitle(args []string, stdin io.Reader, interactive bool) (string, error) {
	if len(args) > 0 {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return "", fmt.Errorf("%w: title is empty", apperr.ErrInvalidInput)
		}
		return title, nil
	}
	if interactive || stdin == nil {
		return "", fmt.Errorf("%w: missing <title> (pass it as an argument or pipe it on stdin)", apperr.ErrInvalidInput)
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: reading title from stdin: %w", apperr.ErrInvalidInput, err)
	}
	return "", fmt.Errorf("%w: stdin is empty", apperr.ErrInvalidInput)
}

// Path returns the directory for title under root. A non-zero created time
// prefixes the slug with its date.
func Path(root, title string, created time.Time) (string, error) {
	s := slug.Slugify(title)
	if s == "" {
		return "", fmt.Errorf("%w: title %q has no characters usable in a directory name", apperr.ErrInvalidInput, title)
	}
	if !created.IsZero() {
		s = naming.DatePrefix(created) + s
	}
	return filepath.Join(root, s), nil
}

// Create makes dir and any missing parents. An existing project directory
// is reused.
func Create(ops storage.FileOps, dir string) error {
	if err := ops.CreateDirAll(dir); err != nil {
		return fmt.Errorf("%w: %s: %w", apperr.ErrCreateFailed, dir, err)
	}
	return nil
}
