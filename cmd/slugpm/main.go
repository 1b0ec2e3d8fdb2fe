package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/starford/slugpm/internal"
	"github.com/starford/slugpm/internal/apperr"
	"github.com/starford/slugpm/internal/ui"
	pkgconfig "github.com/starford/slugpm/pkg/config"
)

var version = "dev"

// newApp loads the config selected by the global flags and builds an App
// on top of the process-level options in base.
func newApp(cmd *cli.Command, base []internal.Option) (*internal.App, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cmd.Bool("verbose") {
		cfg.App.LogLevel = slog.LevelDebug
	}

	opts := append([]internal.Option{internal.WithConfig(cfg)}, base...)
	return internal.New(opts...)
}

func newRootCommand(base ...internal.Option) *cli.Command {
	return &cli.Command{
		Name:            "slugpm",
		Usage:           "Project slugs + archiving",
		ArgsUsage:       "[title...]",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional config file",
				Sources: cli.EnvVars("SLUGPM_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log each decision to stderr",
			},
			&cli.BoolFlag{
				Name:  "date",
				Usage: "Prefix the new project directory with today's date (YYYY-MM-DD-)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(cmd, base)
			if err != nil {
				return err
			}
			_, err = app.CreateProject(ctx, cmd.Args().Slice(), cmd.Bool("date"))
			return err
		},
		Commands: []*cli.Command{
			{
				Name:  "archive",
				Usage: "Archive a file or directory",
				Description: "slugpm archive <path>:\n" +
					"  file: moves it to <parent>/archive/<filename>\n" +
					"  dir:  moves it to <parent>/../archive/<dirname>\n" +
					"slugpm archive <file> -:\n" +
					"  appends stdin to <parent>/archive/<filename>, creating it if needed",
				ArgsUsage: "<path> [-]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, appendMode, err := archiveArgs(cmd.Args().Slice())
					if err != nil {
						return err
					}
					app, err := newApp(cmd, base)
					if err != nil {
						return err
					}
					_, err = app.Archive(ctx, path, appendMode)
					return err
				},
			},
			{
				Name:      "name",
				Usage:     "Print the project name without a leading YYYY-MM-DD- prefix",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return fmt.Errorf("%w: name expects exactly one <name>", apperr.ErrInvalidInput)
					}
					app, err := newApp(cmd, base)
					if err != nil {
						return err
					}
					_, err = app.Name(ctx, cmd.Args().First())
					return err
				},
			},
		},
	}
}

// archiveArgs parses "<path> [-]".
func archiveArgs(args []string) (string, bool, error) {
	switch len(args) {
	case 1:
		return args[0], false, nil
	case 2:
		if args[1] != "-" {
			return "", false, fmt.Errorf("%w: expected '-', got %q", apperr.ErrInvalidInput, args[1])
		}
		return args[0], true, nil
	default:
		return "", false, fmt.Errorf("%w: archive expects <path> [-]", apperr.ErrInvalidInput)
	}
}

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(fmt.Errorf("resolve working directory: %w", err)))
		os.Exit(1)
	}

	cmd := newRootCommand(
		internal.WithStdin(os.Stdin, term.IsTerminal(int(os.Stdin.Fd()))),
		internal.WithStdout(os.Stdout),
		internal.WithLogOutput(os.Stderr),
		internal.WithWorkDir(wd),
	)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err))
		if errors.Is(err, apperr.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, ui.Hint("run 'slugpm --help' for usage"))
		}
		os.Exit(1)
	}
}
