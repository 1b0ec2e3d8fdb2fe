package internal

import (
	"io"
	"log/slog"
	"time"

	"github.com/starford/slugpm/internal/storage"
)

// Option is a functional option for configuring the application.
type Option func(*App)

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithFileOps sets the file-system implementation.
func WithFileOps(ops storage.FileOps) Option {
	return func(a *App) {
		a.ops = ops
	}
}

// WithStdin sets standard input and whether it is an interactive terminal.
func WithStdin(r io.Reader, interactive bool) Option {
	return func(a *App) {
		a.stdin = r
		a.interactive = interactive
	}
}

// WithStdout sets where command results are printed.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithWorkDir sets the directory relative paths are resolved against.
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.workDir = dir
	}
}

// WithClock sets the time source used for date-prefixed projects.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithLogOutput sets where the configured logger writes.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) {
		a.logOutput = w
	}
}

// WithLogger replaces the configured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
