// Package main is the entry point for the file-helpers application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/file-helpers/internal/cli"
	"github.com/joe/file-helpers/internal/config"
	"github.com/joe/file-helpers/internal/logger"
	"github.com/joe/file-helpers/internal/tui"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

func main() {
	cfg, err := config.ParseFlags()
	if errors.Is(err, arg.ErrHelp) || errors.Is(err, arg.ErrVersion) {
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.LoadSettings(cfg.Settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	connect := func(ctx context.Context, paths ...string) (*filesystem.Session, error) {
		return filesystem.CreateFileSystemWithOptions(ctx, settings.SSHOptions(), paths...)
	}

	app := cli.New(logger.NewStderr(cfg.LogLevel), connect, browse)
	code := app.Run(ctx, cfg)

	stop()
	os.Exit(code)
}

var errNotTerminal = errors.New("browse needs an interactive terminal")

// browse runs the TUI, using the alt screen only if stdout is a TTY.
func browse(fsys filesystem.FileSystem, helpers *filehelpers.Helpers, dir string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	return tui.Run(fsys, helpers, dir, opts...)
}
