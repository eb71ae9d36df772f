// Package filesystem provides an abstraction layer for the file system primitives
// the file helpers are built on: directory listings, whole-file handles, stat and
// single-level directory creation. Local, SFTP and in-memory implementations are
// provided so the helpers can be injected with any of them.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirPermissions is the mode requested for created directories (before umask).
const DirPermissions os.FileMode = 0o777

// File is an interface that abstracts file operations.
// This allows us to work with both real files and mock files.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Stat() (os.FileInfo, error)
}

// FileSystem is an interface that abstracts filesystem operations.
// This allows for dependency injection and testing with mock implementations.
type FileSystem interface {
	// List opens a listing over the entries of dir. It never fails: a directory
	// that cannot be opened yields a listing with no entries and a non-nil Err.
	List(dir string) DirectoryListing

	Open(path string) (File, error)
	// Create opens path for writing, creating or truncating it.
	Create(path string) (File, error)
	// Mkdir creates a single directory; the parent must already exist.
	Mkdir(path string) error
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)

	// Join and Split are the path operations matching this file system's separator.
	Join(elem ...string) string
	Split(path string) (dir, file string)
}

// RealFileSystem implements FileSystem on the local machine.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Create creates a file for writing.
func (fs *RealFileSystem) Create(path string) (File, error) {
	file, err := os.Create(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// Join joins path elements with the platform separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// List opens a native directory listing.
func (fs *RealFileSystem) List(dir string) DirectoryListing {
	return openNativeListing(dir)
}

// Lstat returns file information without following a final symbolic link.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Mkdir creates a single directory with DirPermissions. The *os.PathError
// is returned as is; callers add their own context.
func (fs *RealFileSystem) Mkdir(path string) error {
	return os.Mkdir(path, DirPermissions) //nolint:wrapcheck // PathError already names op and path
}

// Open opens a file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// Split splits path into its parent directory and final element.
// Only trailing separators are dropped from the parent, and a root keeps
// one. "." and ".." elements are left for the file system to resolve.
func (fs *RealFileSystem) Split(path string) (string, string) {
	dir, file := filepath.Split(path)
	volume := filepath.VolumeName(dir)

	rest := strings.TrimRight(dir[len(volume):], string(filepath.Separator)+"/")
	if rest == "" && len(dir) > len(volume) {
		rest = string(filepath.Separator)
	}

	return volume + rest, file
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// Compile-time interface checks.
var _ FileSystem = (*RealFileSystem)(nil)
