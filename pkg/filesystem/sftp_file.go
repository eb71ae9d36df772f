package filesystem

import (
	"fmt"
	"os"

	"github.com/pkg/sftp"
)

// SFTPFile wraps sftp.File to implement the filesystem.File interface.
type SFTPFile struct {
	file *sftp.File
	path string
}

// newSFTPFile creates a new SFTPFile wrapper.
func newSFTPFile(file *sftp.File, path string) *SFTPFile {
	return &SFTPFile{
		file: file,
		path: path,
	}
}

// Close closes the remote handle. Buffered writes are flushed by the server
// on close, so a failure here may mean data was lost.
func (f *SFTPFile) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("failed to close remote file %s: %w", f.path, err)
	}

	return nil
}

// Name returns the remote path the file was opened with.
func (f *SFTPFile) Name() string {
	return f.path
}

func (f *SFTPFile) Read(p []byte) (int, error) {
	return f.file.Read(p) //nolint:wrapcheck // io.EOF must pass through unwrapped
}

// Stat returns file information for the SFTP file.
func (f *SFTPFile) Stat() (os.FileInfo, error) {
	info, err := f.file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", f.path, err)
	}

	return info, nil
}

func (f *SFTPFile) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write remote file %s: %w", f.path, err)
	}

	return n, nil
}
