//go:build !linux && !windows

package filesystem

import (
	"errors"
	"io"
	"os"
)

// readdirBatchSize is how many names are requested from the OS per call.
const readdirBatchSize = 128

// nativeListing enumerates a directory through os.File.Readdirnames, which
// wraps the platform's readdir. The directory is closed as soon as enumeration
// ends.
type nativeListing struct {
	dir     *os.File
	pending []string
	next    string
	hasNext bool
	err     error
}

func openNativeListing(dir string) DirectoryListing {
	file, err := os.Open(dir) // #nosec G304 - directory path is controlled by caller
	if err != nil {
		return &nativeListing{err: err}
	}

	listing := &nativeListing{dir: file}
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
	return l.dir != nil && l.hasNext
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

		names, err := l.dir.Readdirnames(readdirBatchSize)
		if err != nil && !errors.Is(err, io.EOF) {
			l.err = err
		}

		if len(names) == 0 {
			l.next, l.hasNext = "", false
			_ = l.release()

			return
		}

		l.pending = names
	}
}

func (l *nativeListing) release() error {
	if l.dir == nil {
		return nil
	}

	err := l.dir.Close()
	l.dir = nil

	return err
}
