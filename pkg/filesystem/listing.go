package filesystem

// DirectoryListing iterates over the entries of a single directory, except "."
// and "..". Example usage:
//
//	listing := fsys.List("/tmp")
//	defer listing.Close()
//	for listing.HasNextEntry() {
//	    fmt.Println(listing.NextEntry())
//	}
//
// The entry after the one most recently returned is read ahead, so HasNextEntry
// never blocks. Entries come back in whatever order the underlying enumeration
// produces them.
type DirectoryListing interface {
	// HasNextEntry reports whether another entry is available. Once it returns
	// false it keeps returning false.
	HasNextEntry() bool

	// NextEntry returns the next entry name and advances past it.
	// Returns "" when HasNextEntry is false.
	NextEntry() string

	// Err returns the error that prevented the directory from being opened or
	// stopped enumeration early. It is informational: a failed listing simply
	// has no entries.
	Err() error

	// Close releases the directory handle. It is safe to call more than once
	// and after the listing has been exhausted.
	Close() error
}

// isDotEntry reports whether name is one of the self/parent pseudo-entries.
func isDotEntry(name string) bool {
	return name == "." || name == ".."
}

// sliceListing is a DirectoryListing over names that were read up front.
// It backs listings for file systems whose primitives return a whole directory
// at once (SFTP, the in-memory mock).
type sliceListing struct {
	names []string
	index int
	err   error
}

// newSliceListing creates a listing over names, skipping dot entries.
func newSliceListing(names []string) *sliceListing {
	listing := &sliceListing{names: names}
	listing.skipDotEntries()

	return listing
}

// newFailedListing creates an empty listing that reports err.
func newFailedListing(err error) *sliceListing {
	return &sliceListing{err: err}
}

// Close implements DirectoryListing.
func (l *sliceListing) Close() error {
	l.names = nil
	l.index = 0

	return nil
}

// Err implements DirectoryListing.
func (l *sliceListing) Err() error {
	return l.err
}

// HasNextEntry implements DirectoryListing.
func (l *sliceListing) HasNextEntry() bool {
	return l.index < len(l.names)
}

// NextEntry implements DirectoryListing.
func (l *sliceListing) NextEntry() string {
	if !l.HasNextEntry() {
		return ""
	}

	result := l.names[l.index]
	l.index++
	l.skipDotEntries()

	return result
}

func (l *sliceListing) skipDotEntries() {
	for l.index < len(l.names) && isDotEntry(l.names[l.index]) {
		l.index++
	}
}
