// Package internal provides the application wiring behind the slugpm commands.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/starford/slugpm/internal/apperr"
	"github.com/starford/slugpm/internal/archive"
	"github.com/starford/slugpm/internal/naming"
	"github.com/starford/slugpm/internal/project"
	"github.com/starford/slugpm/internal/storage"
)

// App runs slugpm commands against injected process state: file system,
// standard streams, working directory and clock.
type App struct {
	config      *Config
	ops         storage.FileOps
	stdin       io.Reader
	interactive bool
	stdout      io.Writer
	workDir     string
	now         func() time.Time
	logOutput   io.Writer
	logger      *slog.Logger
	router      *archive.Router
}

// New builds an App from opts. Unset collaborators default to the real
// file system, no standard input, discarded output and the wall clock.
func New(opts ...Option) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := app.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if app.ops == nil {
		app.ops = storage.NewOS()
	}
	if app.stdin == nil {
		app.interactive = true
	}
	if app.stdout == nil {
		app.stdout = io.Discard
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.logger == nil {
		out := app.logOutput
		if out == nil {
			out = io.Discard
		}
		app.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: app.config.App.LogLevel,
		}))
	}
	app.router = archive.NewRouter(app.ops, app.config.Archive.DirName)

	app.logger.Debug("Configuration loaded",
		slog.String("project_root", app.config.Project.Root),
		slog.String("archive_dir", app.config.Archive.DirName),
		slog.String("work_dir", app.workDir),
		slog.Bool("stdin_interactive", app.interactive),
		slog.String("log_level", app.config.App.LogLevel.String()))

	return app, nil
}

// CreateProject creates the project directory for the title given in args
// (or piped on stdin) and prints its path. dated forces a date prefix even
// when the config does not enable one.
func (a *App) CreateProject(ctx context.Context, args []string, dated bool) (string, error) {
	title, err := project.ResolveTitle(args, a.stdin, a.interactive)
	if err != nil {
		return "", err
	}

	var created time.Time
	if dated || a.config.Project.DatePrefix {
		created = a.now()
	}
	dir, err := project.Path(a.config.Project.Root, title, created)
	if err != nil {
		return "", err
	}

	a.logger.DebugContext(ctx, "creating project",
		slog.String("title", title),
		slog.String("dir", a.resolve(dir)))

	if err := project.Create(a.ops, a.resolve(dir)); err != nil {
		return "", err
	}

	fmt.Fprintln(a.stdout, dir)
	return dir, nil
}

// Archive moves path into its archive folder, or appends stdin to the
// archived copy when appendMode is set, and prints the destination.
func (a *App) Archive(ctx context.Context, path string, appendMode bool) (archive.Target, error) {
	if path == "" {
		return archive.Target{}, fmt.Errorf("%w: missing <path>", apperr.ErrInvalidInput)
	}

	target, err := a.router.Resolve(a.resolve(path), appendMode)
	if err != nil {
		return archive.Target{}, err
	}

	a.logger.DebugContext(ctx, "archiving",
		slog.String("source", target.Source),
		slog.String("destination", target.Destination),
		slog.String("operation", target.Operation.String()))

	if err := a.router.Apply(target, a.stdin); err != nil {
		return target, err
	}

	fmt.Fprintln(a.stdout, target.Destination)
	return target, nil
}

// Name prints the display name of a project directory.
func (a *App) Name(ctx context.Context, arg string) (string, error) {
	name, err := naming.ProjectName(arg)
	if err != nil {
		return "", err
	}
	a.logger.DebugContext(ctx, "resolved project name", slog.String("input", arg), slog.String("name", name))
	fmt.Fprintln(a.stdout, name)
	return name, nil
}

func (a *App) resolve(path string) string {
	if a.workDir == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(a.workDir, path)
}
