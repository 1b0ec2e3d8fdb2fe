// Package naming derives display names from project directory names.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/starford/slugpm/internal/apperr"
)

// dateLayout is the layout of the optional project name prefix.
const dateLayout = "2006-01-02"

var datePrefix = regexp.MustCompile(`(?s)^\d{4}-\d{2}-\d{2}-(.*)$`)

// StripDatePrefix removes a leading "YYYY-MM-DD-" from name. Names without
// the prefix are returned unchanged.
func StripDatePrefix(name string) string {
	m := datePrefix.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[1]
}

// ProjectName returns the display name for a project directory given as a
// name or a path: the basename with any date prefix stripped.
func ProjectName(arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("%w: project name is empty", apperr.ErrInvalidInput)
	}
	base := filepath.Base(arg)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q has no directory name", apperr.ErrInvalidInput, arg)
	}
	return StripDatePrefix(base), nil
}

// DatePrefix renders t as a project name prefix, e.g. "2025-09-13-".
func DatePrefix(t time.Time) string {
	return t.Format(dateLayout) + "-"
}
