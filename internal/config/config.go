// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/joe/file-helpers/internal/logger"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// Exported constants.
const (
	ProgramName = "file-helpers"
)

// Exported variables.
var (
	ErrEmptyPath = errors.New("path must not be empty")
	ErrNoCommand = errors.New("a command is required")
)

// ListCmd lists the entries of one directory.
type ListCmd struct {
	Dir string `arg:"positional,required" help:"directory to list"`
}

// CatCmd prints a file.
type CatCmd struct {
	Text bool   `arg:"--text" help:"read in text mode (translate platform line endings)"`
	File string `arg:"positional,required" help:"file to read"`
}

// WriteCmd replaces a file's contents with stdin or a local file.
type WriteCmd struct {
	From string `arg:"--from" help:"local file to copy contents from (default: stdin)"`
	File string `arg:"positional,required" help:"file to write"`
}

// MatchCmd lists entries of a directory ending with a suffix.
type MatchCmd struct {
	Dir    string `arg:"positional,required" help:"directory to search"`
	Suffix string `arg:"positional,required" help:"case-sensitive name suffix, e.g. .tflite"`
}

// MatchTopCmd lists entries ending with a name one level below a directory.
type MatchTopCmd struct {
	Parent   string `arg:"positional,required" help:"directory whose subdirectories are searched"`
	FileName string `arg:"positional,required" help:"case-sensitive name suffix"`
}

// GlobCmd lists entries of a directory matching a glob pattern.
type GlobCmd struct {
	Dir     string `arg:"positional,required" help:"directory to search"`
	Pattern string `arg:"positional,required" help:"glob pattern such as '*.{json,yaml}'"`
}

// FindCmd lists files ending with a suffix anywhere below a directory.
type FindCmd struct {
	Root   string `arg:"positional,required" help:"directory to walk"`
	Suffix string `arg:"positional,required" help:"case-sensitive name suffix"`
}

// ExistsCmd checks whether a path exists.
type ExistsCmd struct {
	Path string `arg:"positional,required" help:"path to check"`
}

// MkdirCmd creates a directory and its parents.
type MkdirCmd struct {
	Path string `arg:"positional,required" help:"directory to create"`
}

// BrowseCmd opens the interactive directory browser.
type BrowseCmd struct {
	Dir string `arg:"positional" default:"." help:"directory to start in"`
}

// Config holds the application configuration
type Config struct {
	LogLevel logger.Level `arg:"--log-level,env:FILE_HELPERS_LOG_LEVEL" default:"warn" help:"debug|info|warn|error|quiet"`
	Verbose  bool         `arg:"-v,--verbose" help:"shorthand for --log-level debug"`
	Settings string       `arg:"--config,env:FILE_HELPERS_CONFIG" help:"YAML settings file (default: <user config dir>/file-helpers/config.yaml)"`

	List     *ListCmd     `arg:"subcommand:ls" help:"list directory entries"`
	Cat      *CatCmd      `arg:"subcommand:cat" help:"print a file (binary unless --text)"`
	Write    *WriteCmd    `arg:"subcommand:write" help:"replace a file's contents"`
	Match    *MatchCmd    `arg:"subcommand:match" help:"list entries ending with a suffix"`
	MatchTop *MatchTopCmd `arg:"subcommand:match-top" help:"list entries ending with a name in each subdirectory"`
	Glob     *GlobCmd     `arg:"subcommand:glob" help:"list entries matching a glob pattern"`
	Find     *FindCmd     `arg:"subcommand:find" help:"find files by suffix at any depth"`
	Exists   *ExistsCmd   `arg:"subcommand:exists" help:"check that a path exists"`
	Mkdir    *MkdirCmd    `arg:"subcommand:mkdir" help:"create a directory and its parents"`
	Browse   *BrowseCmd   `arg:"subcommand:browse" help:"browse directories interactively"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "List, match, read and write files on local disks or SFTP servers.\n" +
		"Any path may be given as sftp://user@host[:port]/path."
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return ProgramName + " 1.0.0"
}

// Command returns the name of the selected subcommand, or "" if none.
func (cfg *Config) Command() string {
	switch {
	case cfg.List != nil:
		return "ls"
	case cfg.Cat != nil:
		return "cat"
	case cfg.Write != nil:
		return "write"
	case cfg.Match != nil:
		return "match"
	case cfg.MatchTop != nil:
		return "match-top"
	case cfg.Glob != nil:
		return "glob"
	case cfg.Find != nil:
		return "find"
	case cfg.Exists != nil:
		return "exists"
	case cfg.Mkdir != nil:
		return "mkdir"
	case cfg.Browse != nil:
		return "browse"
	default:
		return ""
	}
}

// Paths returns the path arguments of the selected subcommand, in order.
// These are the arguments that may be SFTP URLs.
func (cfg *Config) Paths() []string {
	switch {
	case cfg.List != nil:
		return []string{cfg.List.Dir}
	case cfg.Cat != nil:
		return []string{cfg.Cat.File}
	case cfg.Write != nil:
		return []string{cfg.Write.File}
	case cfg.Match != nil:
		return []string{cfg.Match.Dir}
	case cfg.MatchTop != nil:
		return []string{cfg.MatchTop.Parent}
	case cfg.Glob != nil:
		return []string{cfg.Glob.Dir}
	case cfg.Find != nil:
		return []string{cfg.Find.Root}
	case cfg.Exists != nil:
		return []string{cfg.Exists.Path}
	case cfg.Mkdir != nil:
		return []string{cfg.Mkdir.Path}
	case cfg.Browse != nil:
		return []string{cfg.Browse.Dir}
	default:
		return nil
	}
}

// ParseFlags parses the process arguments and returns configuration.
// Help and version output goes to stdout.
func ParseFlags() (*Config, error) {
	return Parse(os.Args[1:], os.Stdout)
}

// Parse parses args (without the program name). Help and version requests are
// written to out and reported as arg.ErrHelp and arg.ErrVersion.
func Parse(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{LogLevel: logger.LevelWarn}

	parser, err := arg.NewParser(arg.Config{Program: ProgramName}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	err = parser.Parse(args)

	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelpForSubcommand(out, parser.SubcommandNames()...) //nolint:errcheck // best-effort help output
		return nil, err //nolint:wrapcheck // sentinel checked by the caller
	case errors.Is(err, arg.ErrVersion):
		_, _ = fmt.Fprintln(out, cfg.Version())
		return nil, err //nolint:wrapcheck // sentinel checked by the caller
	case err != nil:
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if cfg.Command() == "" {
		parser.WriteHelp(out)
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Verbose {
		cfg.LogLevel = logger.LevelDebug
	}

	if cfg.Browse != nil && cfg.Browse.Dir == "" {
		cfg.Browse.Dir = "."
	}

	if err := cfg.ValidatePaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidatePaths checks that a command was chosen, that its paths are non-empty
// and that any SFTP URLs are well formed and name a single server.
func (cfg *Config) ValidatePaths() error {
	if cfg.Command() == "" {
		return ErrNoCommand
	}

	paths := cfg.Paths()
	for _, path := range paths {
		if path == "" {
			return fmt.Errorf("%s: %w", cfg.Command(), ErrEmptyPath)
		}
	}

	if cfg.Write != nil && cfg.Write.From != "" {
		if target, err := filesystem.ParseTarget(cfg.Write.From); err == nil && target.Remote {
			return fmt.Errorf("--from must be a local file: %s", cfg.Write.From) //nolint:err113 // Validation error with actual value
		}
	}

	if _, err := filesystem.ParseTargets(paths...); err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	return nil
}
