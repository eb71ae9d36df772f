//go:build linux

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// direntBufferSize is the size of the buffer handed to getdents64.
const direntBufferSize = 8 * 1024

// nativeListing enumerates a directory with getdents64 on an O_DIRECTORY
// descriptor. The descriptor is closed as soon as enumeration ends.
type nativeListing struct {
	path    string
	fd      int
	buf     []byte
	bufPos  int
	bufEnd  int
	pending []string
	next    string
	hasNext bool
	err     error
}

func openNativeListing(dir string) DirectoryListing {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return &nativeListing{path: dir, fd: -1, err: &os.PathError{Op: "opendir", Path: dir, Err: err}}
	}

	listing := &nativeListing{
		path: dir,
		fd:   fd,
		buf:  make([]byte, direntBufferSize),
	}
	listing.readNextEntry()

	return listing
}

// Close implements DirectoryListing.
func (l *nativeListing) Close() error {
	l.hasNext = false
	l.next = ""

	return l.release()
}

// Err implements DirectoryListing.
func (l *nativeListing) Err() error {
	return l.err
}

// HasNextEntry implements DirectoryListing.
func (l *nativeListing) HasNextEntry() bool {
	return l.fd >= 0 && l.hasNext
}

// NextEntry implements DirectoryListing.
func (l *nativeListing) NextEntry() string {
	if !l.HasNextEntry() {
		return ""
	}

	result := l.next
	l.readNextEntry()

	return result
}

// fill reads the next batch of dirents. It returns false at end of directory
// or on error.
func (l *nativeListing) fill() bool {
	for {
		n, err := unix.ReadDirent(l.fd, l.buf)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			l.err = &os.PathError{Op: "readdirent", Path: l.path, Err: err}
			return false
		}

		if n <= 0 {
			return false
		}

		l.bufPos, l.bufEnd = 0, n

		return true
	}
}

// readNextEntry buffers the next entry that is not "." or "..", releasing the
// descriptor when none is left.
func (l *nativeListing) readNextEntry() {
	for {
		for len(l.pending) > 0 {
			name := l.pending[0]
			l.pending = l.pending[1:]

			if !isDotEntry(name) {
				l.next, l.hasNext = name, true
				return
			}
		}

		if l.bufPos >= l.bufEnd && !l.fill() {
			l.next, l.hasNext = "", false
			_ = l.release()

			return
		}

		consumed, _, names := unix.ParseDirent(l.buf[l.bufPos:l.bufEnd], -1, l.pending[:0])
		if consumed == 0 {
			// Truncated record; drop the rest of the batch.
			consumed = l.bufEnd - l.bufPos
		}

		l.bufPos += consumed
		l.pending = names
	}
}

func (l *nativeListing) release() error {
	if l.fd < 0 {
		return nil
	}

	err := unix.Close(l.fd)
	l.fd = -1

	if err != nil {
		return &os.PathError{Op: "closedir", Path: l.path, Err: err}
	}

	return nil
}
