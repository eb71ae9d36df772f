package filesystem

import (
	"fmt"
	"os"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over a single SFTP session.
// Paths are slash-separated and interpreted by the server.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a file system on an open SFTP client. The caller
// keeps ownership of the client (or of the SFTPConnection it came from).
func NewSFTPFileSystem(client *sftp.Client) *SFTPFileSystem {
	return &SFTPFileSystem{client: client}
}

// Create creates or truncates a remote file for writing.
func (fs *SFTPFileSystem) Create(path string) (File, error) {
	file, err := fs.client.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", path, err)
	}

	return newSFTPFile(file, path), nil
}

// Join joins path elements with "/".
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return fs.client.Join(elem...)
}

// List reads the whole remote directory in one request and iterates it.
func (fs *SFTPFileSystem) List(dir string) DirectoryListing {
	infos, err := fs.client.ReadDir(dir)
	if err != nil {
		return newFailedListing(fmt.Errorf("failed to read remote directory %s: %w", dir, err))
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return newSliceListing(names)
}

// Lstat returns file information without following a final symbolic link.
func (fs *SFTPFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := fs.client.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote file %s: %w", path, err)
	}

	return info, nil
}

// Mkdir creates a single remote directory. The server applies its own mode.
func (fs *SFTPFileSystem) Mkdir(path string) error {
	err := fs.client.Mkdir(path)
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", path, err)
	}

	return nil
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", path, err)
	}

	return newSFTPFile(file, path), nil
}

// Split splits a remote path into its parent directory and final element.
func (fs *SFTPFileSystem) Split(path string) (string, string) {
	return splitSlashPath(path)
}

// Stat returns file information for a remote file.
func (fs *SFTPFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", path, err)
	}

	return info, nil
}

// Compile-time interface checks.
var _ FileSystem = (*SFTPFileSystem)(nil)
