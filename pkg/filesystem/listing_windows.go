//go:build windows

package filesystem

import (
	"os"

	"golang.org/x/sys/windows"
)

// nativeListing enumerates a directory with FindFirstFile/FindNextFile.
// The find handle is closed as soon as enumeration ends.
type nativeListing struct {
	path    string
	handle  windows.Handle
	data    windows.Win32finddata
	next    string
	hasNext bool
	err     error
}

func openNativeListing(dir string) DirectoryListing {
	listing := &nativeListing{path: dir, handle: windows.InvalidHandle}

	pattern, err := windows.UTF16PtrFromString(dir + `\*`)
	if err != nil {
		listing.err = &os.PathError{Op: "FindFirstFile", Path: dir, Err: err}
		return listing
	}

	handle, err := windows.FindFirstFile(pattern, &listing.data)
	if err != nil {
		listing.err = &os.PathError{Op: "FindFirstFile", Path: dir, Err: err}
		return listing
	}

	listing.handle = handle
	listing.consumeCurrent()

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
	return l.handle != windows.InvalidHandle && l.hasNext
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

// consumeCurrent buffers the entry held in l.data, moving past dot entries.
func (l *nativeListing) consumeCurrent() {
	name := windows.UTF16ToString(l.data.FileName[:])
	if isDotEntry(name) {
		l.readNextEntry()
		return
	}

	l.next, l.hasNext = name, true
}

// readNextEntry buffers the next entry that is not "." or "..", releasing the
// handle when none is left.
func (l *nativeListing) readNextEntry() {
	for {
		err := windows.FindNextFile(l.handle, &l.data)
		if err != nil {
			if err != windows.ERROR_NO_MORE_FILES {
				l.err = &os.PathError{Op: "FindNextFile", Path: l.path, Err: err}
			}

			l.next, l.hasNext = "", false
			_ = l.release()

			return
		}

		name := windows.UTF16ToString(l.data.FileName[:])
		if !isDotEntry(name) {
			l.next, l.hasNext = name, true
			return
		}
	}
}

func (l *nativeListing) release() error {
	if l.handle == windows.InvalidHandle {
		return nil
	}

	err := windows.FindClose(l.handle)
	l.handle = windows.InvalidHandle

	if err != nil {
		return &os.PathError{Op: "FindClose", Path: l.path, Err: err}
	}

	return nil
}
