// Package filehelpers provides whole-file reads and writes, suffix and pattern
// matching over directory listings, existence checks and recursive directory
// creation. Failures are *errors.FileError values carrying a Kind.
//
// Every operation is available as a method on Helpers, which works against any
// filesystem.FileSystem, and as a package-level function bound to the local
// file system.
package filehelpers

import (
	"github.com/joe/file-helpers/pkg/filesystem"
)

// Logger is the logging port the helpers report through. The helpers only log
// at debug level.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// WithComponent returns a Logger that prefixes messages with component.
	WithComponent(component string) Logger
}

// Helpers runs the file helper operations against an injected file system.
type Helpers struct {
	FS  filesystem.FileSystem
	log Logger
}

// New creates Helpers over fs that log nothing.
func New(fs filesystem.FileSystem) *Helpers {
	return &Helpers{FS: fs, log: nopLogger{}}
}

// NewLocal creates Helpers over the local file system.
func NewLocal() *Helpers {
	return New(filesystem.NewRealFileSystem())
}

// WithLogger returns a copy of h that logs to logger under the "filehelpers" component.
func (h *Helpers) WithLogger(logger Logger) *Helpers {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Helpers{FS: h.FS, log: logger.WithComponent("filehelpers")}
}

// Package-level functions bound to the local file system.

// Exists reports whether path exists on the local file system.
func Exists(path string) error {
	return local.Exists(path)
}

// FindRecursively searches the local tree under root for files ending with suffix.
func FindRecursively(root, suffix string) ([]string, error) {
	return local.FindRecursively(root, suffix)
}

// GetContents reads a whole local file.
func GetContents(path string, binaryMode bool) ([]byte, error) {
	return local.GetContents(path, binaryMode)
}

// MatchFileTypeInDirectory lists local entries of directory ending with suffix.
func MatchFileTypeInDirectory(directory, suffix string) ([]string, error) {
	return local.MatchFileTypeInDirectory(directory, suffix)
}

// MatchInTopSubdirectories lists local entries ending with fileName one level below parentDirectory.
func MatchInTopSubdirectories(parentDirectory, fileName string) ([]string, error) {
	return local.MatchInTopSubdirectories(parentDirectory, fileName)
}

// MatchPatternInDirectory lists local entries of directory matching a glob pattern.
func MatchPatternInDirectory(directory, pattern string) ([]string, error) {
	return local.MatchPatternInDirectory(directory, pattern)
}

// RecursivelyCreateDir creates a local directory and any missing parents.
func RecursivelyCreateDir(path string) error {
	return local.RecursivelyCreateDir(path)
}

// SetContents replaces a local file's contents.
func SetContents(path string, content []byte) error {
	return local.SetContents(path, content)
}

// unexported variables.
var (
	local = NewLocal() //nolint:gochecknoglobals // stateless default for the package-level functions
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)           {}
func (nopLogger) Error(string, ...any)           {}
func (nopLogger) Info(string, ...any)            {}
func (nopLogger) Warn(string, ...any)            {}
func (l nopLogger) WithComponent(string) Logger { return l }
