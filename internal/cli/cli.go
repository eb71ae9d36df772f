// Package cli runs the file-helpers subcommands against a resolved file system.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joe/file-helpers/internal/config"
	"github.com/joe/file-helpers/internal/tui/shared"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// Exported constants.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ConnectFunc resolves path arguments to a file system session.
type ConnectFunc func(ctx context.Context, paths ...string) (*filesystem.Session, error)

// BrowseFunc runs the interactive browser.
type BrowseFunc func(fsys filesystem.FileSystem, helpers *filehelpers.Helpers, dir string) error

// App holds the streams and collaborators a command run needs.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    filehelpers.Logger

	Connect ConnectFunc
	Browse  BrowseFunc
}

// New creates an App on the process streams. A nil connect means
// filesystem.CreateFileSystem.
func New(log filehelpers.Logger, connect ConnectFunc, browse BrowseFunc) *App {
	if connect == nil {
		connect = filesystem.CreateFileSystem
	}

	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Log:     log,
		Connect: connect,
		Browse:  browse,
	}
}

// Run executes the selected subcommand and returns the process exit code.
// Failures are printed to Stderr with suggestions.
func (a *App) Run(ctx context.Context, cfg *config.Config) int {
	paths := cfg.Paths()
	if len(paths) == 0 {
		a.report(config.ErrNoCommand, "")
		return ExitFailure
	}

	session, err := a.Connect(ctx, paths...)
	if err != nil {
		a.report(err, "")
		return ExitFailure
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			a.Log.Warn("failed to close session: %v", closeErr)
		}
	}()

	if session.Remote() {
		a.Log.Info("connected to %s", cfg.Paths()[0])
	}

	if len(session.Paths) == 0 {
		a.report(config.ErrNoCommand, "")
		return ExitFailure
	}

	helpers := filehelpers.New(session.FS).WithLogger(a.Log)
	path := session.Paths[0]

	err = a.dispatch(cfg, session.FS, helpers, path)
	if err != nil {
		a.report(err, path)
		return ExitFailure
	}

	return ExitOK
}

func (a *App) dispatch(cfg *config.Config, fsys filesystem.FileSystem, helpers *filehelpers.Helpers, path string) error {
	switch {
	case cfg.List != nil:
		return a.list(fsys, path)
	case cfg.Cat != nil:
		return a.cat(helpers, path, !cfg.Cat.Text)
	case cfg.Write != nil:
		return a.write(helpers, path, cfg.Write.From)
	case cfg.Match != nil:
		return a.printMatches(helpers.MatchFileTypeInDirectory(path, cfg.Match.Suffix))
	case cfg.MatchTop != nil:
		return a.printMatches(helpers.MatchInTopSubdirectories(path, cfg.MatchTop.FileName))
	case cfg.Glob != nil:
		return a.printMatches(helpers.MatchPatternInDirectory(path, cfg.Glob.Pattern))
	case cfg.Find != nil:
		return a.printMatches(helpers.FindRecursively(path, cfg.Find.Suffix))
	case cfg.Exists != nil:
		return helpers.Exists(path) //nolint:wrapcheck // already a FileError
	case cfg.Mkdir != nil:
		return helpers.RecursivelyCreateDir(path) //nolint:wrapcheck // already a FileError
	case cfg.Browse != nil:
		return a.Browse(fsys, helpers, path)
	default:
		return config.ErrNoCommand
	}
}

func (a *App) list(fsys filesystem.FileSystem, dir string) error {
	listing := fsys.List(dir)
	defer listing.Close()

	for listing.HasNextEntry() {
		if _, err := fmt.Fprintln(a.Stdout, listing.NextEntry()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := listing.Err(); err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	return nil
}

func (a *App) cat(helpers *filehelpers.Helpers, path string, binaryMode bool) error {
	content, err := helpers.GetContents(path, binaryMode)
	if err != nil {
		return err //nolint:wrapcheck // already a FileError
	}

	if _, err := a.Stdout.Write(content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (a *App) write(helpers *filehelpers.Helpers, path, from string) error {
	var (
		content []byte
		err     error
	)

	if from != "" {
		content, err = filehelpers.NewLocal().WithLogger(a.Log).GetContents(from, true)
	} else {
		content, err = io.ReadAll(a.Stdin)
		if err != nil {
			err = fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	if err != nil {
		return err
	}

	return helpers.SetContents(path, content) //nolint:wrapcheck // already a FileError
}

func (a *App) printMatches(matches []string, err error) error {
	if err != nil {
		return err
	}

	for _, match := range matches {
		if _, err := fmt.Fprintln(a.Stdout, match); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

func (a *App) report(err error, path string) {
	_, _ = fmt.Fprint(a.Stderr, shared.RenderActionableError(err, path, 0))
}
