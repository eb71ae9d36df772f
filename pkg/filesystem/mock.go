package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// Exported variables.
var (
	// ErrInjectedWrite is returned by writes to paths registered with FailWrites.
	ErrInjectedWrite = errors.New("input/output error")
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// Paths are slash-separated; the root "/" always exists.
type MockFileSystem struct {
	mu          sync.RWMutex
	files       map[string]*mockFile
	denied      map[string]bool
	failWrites  map[string]bool
	failCloses  map[string]bool
	openedLists int
	closedLists int
}

// mockFile represents a file in the mock filesystem.
type mockFile struct {
	data    []byte
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string { return fi.name }
func (fi *mockFileInfo) Size() int64  { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return fi.perm | os.ModeDir
	}

	return fi.perm
}
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() any           { return nil }

// mockFileHandle implements the File interface for reading/writing.
type mockFileHandle struct {
	fs        *MockFileSystem
	path      string
	reader    *bytes.Reader
	writer    *bytes.Buffer
	failWrite bool
	failClose bool
	closed    bool
}

func (f *mockFileHandle) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.reader == nil {
		return 0, io.EOF
	}
	return f.reader.Read(p)
}

func (f *mockFileHandle) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.writer == nil {
		return 0, &fs.PathError{Op: "write", Path: f.path, Err: os.ErrInvalid}
	}
	if f.failWrite {
		return 0, &fs.PathError{Op: "write", Path: f.path, Err: ErrInjectedWrite}
	}
	return f.writer.Write(p)
}

func (f *mockFileHandle) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true

	if f.writer != nil {
		f.fs.mu.Lock()
		defer f.fs.mu.Unlock()

		if file, exists := f.fs.files[f.path]; exists {
			file.data = append([]byte(nil), f.writer.Bytes()...)
		}
	}

	if f.failClose {
		return &fs.PathError{Op: "close", Path: f.path, Err: ErrInjectedWrite}
	}

	return nil
}

func (f *mockFileHandle) Stat() (os.FileInfo, error) {
	if f.closed {
		return nil, os.ErrClosed
	}

	return f.fs.Stat(f.path)
}

// mockListing wraps a sliceListing so the mock can count releases.
type mockListing struct {
	*sliceListing
	fs     *MockFileSystem
	closed bool
}

// Close implements DirectoryListing.
func (l *mockListing) Close() error {
	if !l.closed {
		l.closed = true

		l.fs.mu.Lock()
		l.fs.closedLists++
		l.fs.mu.Unlock()
	}

	return l.sliceListing.Close()
}

// NewMockFileSystem creates a new in-memory filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: map[string]*mockFile{
			"/": {modTime: time.Now(), isDir: true, perm: 0o755},
		},
		denied:     make(map[string]bool),
		failWrites: make(map[string]bool),
		failCloses: make(map[string]bool),
	}
}

// Create creates or truncates a file for writing. The parent must be an existing directory.
func (fs *MockFileSystem) Create(path string) (File, error) {
	path = cleanMockPath(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.checkAccessLocked("open", path); err != nil {
		return nil, err
	}

	if existing, exists := fs.files[path]; exists && existing.isDir {
		return nil, &os.PathError{Op: "open", Path: path, Err: errIsDirectory}
	}

	if parent, exists := fs.files[mockParent(path)]; !exists || !parent.isDir {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	fs.files[path] = &mockFile{
		data:    []byte{},
		modTime: time.Now(),
		perm:    0o644,
	}

	return &mockFileHandle{
		fs:        fs,
		path:      path,
		writer:    &bytes.Buffer{},
		failWrite: fs.failWrites[path],
		failClose: fs.failCloses[path],
	}, nil
}

// Join joins path elements with "/".
func (fs *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// List returns a listing over the direct children of dir, in sorted order.
func (fs *MockFileSystem) List(dir string) DirectoryListing {
	dir = cleanMockPath(dir)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.openedLists++
	listing := &mockListing{fs: fs}

	if err := fs.checkAccessLocked("open", dir); err != nil {
		listing.sliceListing = newFailedListing(err)
		return listing
	}

	file, exists := fs.files[dir]
	if !exists {
		listing.sliceListing = newFailedListing(&os.PathError{Op: "open", Path: dir, Err: os.ErrNotExist})
		return listing
	}

	if !file.isDir {
		listing.sliceListing = newFailedListing(&os.PathError{Op: "open", Path: dir, Err: errNotDirectory})
		return listing
	}

	names := make([]string, 0)
	for p := range fs.files {
		if p != dir && mockParent(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)

	listing.sliceListing = newSliceListing(names)

	return listing
}

// Lstat is Stat; the mock has no symbolic links.
func (fs *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	return fs.Stat(path)
}

// Mkdir creates a single directory. The parent must exist.
func (fs *MockFileSystem) Mkdir(path string) error {
	path = cleanMockPath(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.checkAccessLocked("mkdir", path); err != nil {
		return err
	}

	if _, exists := fs.files[path]; exists {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}

	parent, exists := fs.files[mockParent(path)]
	if !exists {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrNotExist}
	}

	if !parent.isDir {
		return &os.PathError{Op: "mkdir", Path: path, Err: errNotDirectory}
	}

	fs.files[path] = &mockFile{
		modTime: time.Now(),
		isDir:   true,
		perm:    DirPermissions,
	}

	return nil
}

// Open opens a file for reading.
func (fs *MockFileSystem) Open(path string) (File, error) {
	path = cleanMockPath(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.checkAccessLocked("open", path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	if file.isDir {
		return nil, &os.PathError{Op: "open", Path: path, Err: errIsDirectory}
	}

	return &mockFileHandle{
		fs:     fs,
		path:   path,
		reader: bytes.NewReader(file.data),
	}, nil
}

// Split splits path into its parent directory and final element.
func (fs *MockFileSystem) Split(p string) (string, string) {
	return splitSlashPath(p)
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = cleanMockPath(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.checkAccessLocked("stat", path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}

	return &mockFileInfo{
		name:    pathBase(path),
		size:    int64(len(file.data)),
		modTime: file.modTime,
		isDir:   file.isDir,
		perm:    file.perm,
	}, nil
}

// Helper methods for testing

// AddDir adds a directory and any missing parents.
func (fs *MockFileSystem) AddDir(p string) {
	p = cleanMockPath(p)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.addDirLocked(p)
}

// AddFile adds a file with the given content, creating parent directories.
func (fs *MockFileSystem) AddFile(p string, content []byte) {
	p = cleanMockPath(p)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.addDirLocked(mockParent(p))
	fs.files[p] = &mockFile{
		data:    append([]byte(nil), content...),
		modTime: time.Now(),
		perm:    0o644,
	}
}

// DenyPath makes every access to path fail with a permission error.
func (fs *MockFileSystem) DenyPath(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.denied[cleanMockPath(p)] = true
}

// FailCloses makes closing a writer for path fail after the data is stored.
func (fs *MockFileSystem) FailCloses(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failCloses[cleanMockPath(p)] = true
}

// FailWrites makes writes to path fail.
func (fs *MockFileSystem) FailWrites(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failWrites[cleanMockPath(p)] = true
}

// GetFile retrieves a file's content from the mock filesystem.
func (fs *MockFileSystem) GetFile(p string) ([]byte, error) {
	p = cleanMockPath(p)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	file, exists := fs.files[p]
	if !exists {
		return nil, os.ErrNotExist
	}

	if file.isDir {
		return nil, errIsDirectory
	}

	return append([]byte(nil), file.data...), nil
}

// ListingsOpen returns how many listings have been opened and not closed.
func (fs *MockFileSystem) ListingsOpen() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.openedLists - fs.closedLists
}

// Paths returns every path in the mock filesystem, sorted.
func (fs *MockFileSystem) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// Remove removes a file or an empty directory.
func (fs *MockFileSystem) Remove(p string) error {
	p = cleanMockPath(p)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[p]
	if !exists {
		return &os.PathError{Op: "remove", Path: p, Err: os.ErrNotExist}
	}

	if file.isDir {
		for other := range fs.files {
			if other != p && strings.HasPrefix(other, strings.TrimSuffix(p, "/")+"/") {
				return &os.PathError{Op: "remove", Path: p, Err: errNotEmpty}
			}
		}
	}

	delete(fs.files, p)

	return nil
}

func (fs *MockFileSystem) addDirLocked(p string) {
	if file, exists := fs.files[p]; exists && file.isDir {
		return
	}

	if p != "/" {
		fs.addDirLocked(mockParent(p))
	}

	fs.files[p] = &mockFile{
		modTime: time.Now(),
		isDir:   true,
		perm:    0o755,
	}
}

func (fs *MockFileSystem) checkAccessLocked(op, p string) error {
	if fs.denied[p] {
		return &os.PathError{Op: op, Path: p, Err: os.ErrPermission}
	}

	return nil
}

// unexported variables.
var (
	errIsDirectory  = errors.New("is a directory")
	errNotDirectory = errors.New("not a directory")
	errNotEmpty     = errors.New("directory not empty")
)

// cleanMockPath makes p absolute and clean so lookups are canonical.
func cleanMockPath(p string) string {
	if p == "" {
		return "/"
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p)
}

func mockParent(p string) string {
	return path.Dir(p)
}

func pathBase(p string) string {
	if p == "/" {
		return "/"
	}

	return path.Base(p)
}

// splitSlashPath splits a slash-separated path into parent and final element,
// keeping "/" as the parent of top-level entries. Only trailing slashes are
// trimmed from the parent.
func splitSlashPath(p string) (string, string) {
	dir, file := path.Split(p)
	if dir == "" {
		return "", file
	}

	trimmed := strings.TrimRight(dir, "/")
	if trimmed == "" {
		return "/", file
	}

	return trimmed, file
}

// Compile-time interface checks.
var _ FileSystem = (*MockFileSystem)(nil)

// String implements fmt.Stringer for debugging test failures.
func (fs *MockFileSystem) String() string {
	return fmt.Sprintf("MockFileSystem%v", fs.Paths())
}
