// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line entry for the filex shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/janderssonse/filex/internal/adapters/platform"
	"github.com/janderssonse/filex/internal/application"
	"github.com/janderssonse/filex/internal/config"
	"github.com/janderssonse/filex/internal/console"
	"github.com/janderssonse/filex/internal/domain"
	"github.com/janderssonse/filex/internal/shell"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Generic failure (catch-all)
	ExitUsageError   = 2  // Invalid command line usage
	ExitConfigError  = 3  // Configuration file error
	ExitSystemError  = 12 // Start directory unusable
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

// ErrNotDirectory is returned when the start directory is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// CLI holds the root command and its resolved settings.
type CLI struct {
	app        *cli.Command
	dir        string
	configPath string
	color      string
	plain      bool
	verbose    bool
	noHelp     bool
	cfg        config.Config
}

// NewCLI creates the filex root command.
func NewCLI() *CLI {
	app := &CLI{cfg: config.Defaults()}

	app.app = &cli.Command{
		Name:    "filex",
		Usage:   "Interactive shell for exploring and managing the local filesystem",
		Version: Version,
		Description: `Reads commands from standard input, one per line, and runs them against
the current working directory of the session.

COMMANDS:
  ls, pwd, cd <dir>, touch <file>, mkdir <dir>, rm <name>,
  cp <src> <dest>, mv <src> <dest>, find <substring>,
  perms <name>, chmod <name> <octal>, help, exit

CONFIGURATION:
  A TOML file is read only when --config is given, e.g. ` + config.DefaultPath(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"C"},
				Usage:       "start the session in `DIR` instead of the current directory",
				Destination: &app.dir,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "read settings from the TOML `FILE`",
				Destination: &app.configPath,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       "auto",
				Destination: &app.color,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without symbols or styling",
				Destination: &app.plain,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "report every filesystem change on stderr",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "no-help",
				Usage:       "do not print the command reference at startup",
				Destination: &app.noHelp,
			},
		},
		Before: app.initConfig,
		Action: app.runSession,
	}

	return app
}

// App returns the root command.
func App() *cli.Command {
	return NewCLI().app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig loads the config file and lets explicitly set flags win.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, err.Error(), err)
	}

	if !cmd.IsSet("dir") {
		app.dir = cfg.StartDir
	}

	if !cmd.IsSet("color") {
		app.color = cfg.Color
	}

	if !cmd.IsSet("plain") {
		app.plain = cfg.Plain
	}

	if !cmd.IsSet("verbose") {
		app.verbose = cfg.Verbose
	}

	if !cmd.IsSet("no-help") {
		app.noHelp = !cfg.ShowHelp
	}

	if _, err := console.ParseColorMode(app.color); err != nil {
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", err)
	}

	app.cfg = cfg

	return ctx, nil
}

func (app *CLI) runSession(ctx context.Context, cmd *cli.Command) error {
	mode, err := console.ParseColorMode(app.color)
	if err != nil {
		return domain.NewExitError(ExitUsageError, err.Error(), err)
	}

	in, out, errw := streams(cmd)

	output := console.New(out, errw, console.Options{
		Verbose: app.verbose,
		Plain:   app.plain,
		Color:   mode,
	})

	fileManager := platform.NewFileManager()

	start, err := startDir(fileManager, app.dir)
	if err != nil {
		return domain.NewExitError(ExitSystemError, fmt.Sprintf("cannot start in %q: %v", app.dir, err), err)
	}

	service := application.NewExplorerService(fileManager, output)
	session := shell.New(in, output, service, start)

	session.Greet(!app.noHelp)

	if err := session.Run(ctx); err != nil {
		return domain.NewExitError(ExitGeneralError, "failed to read input", err)
	}

	return nil
}

func streams(cmd *cli.Command) (io.Reader, io.Writer, io.Writer) {
	var (
		in   io.Reader = os.Stdin
		out  io.Writer = os.Stdout
		errw io.Writer = os.Stderr
	)

	root := cmd.Root()
	if root.Reader != nil {
		in = root.Reader
	}

	if root.Writer != nil {
		out = root.Writer
	}

	if root.ErrWriter != nil {
		errw = root.ErrWriter
	}

	return in, out, errw
}

// startDir returns the canonical start directory, defaulting to the
// process working directory.
func startDir(fsys domain.FileSystem, dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}

		dir = wd
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return "", ErrNotDirectory
	}

	return fsys.Canonical(dir)
}
