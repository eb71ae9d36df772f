package filehelpers

import (
	"strings"
)

// MatchFileTypeInDirectory returns Join(directory, entry) for every entry of
// directory whose name ends with suffix. A directory that cannot be listed
// yields no matches; the error is always nil.
func (h *Helpers) MatchFileTypeInDirectory(directory, suffix string) ([]string, error) {
	results := make([]string, 0)

	h.forEachEntry(directory, func(entry string) {
		if strings.HasSuffix(entry, suffix) {
			results = append(results, h.FS.Join(directory, entry))
		}
	})

	return results, nil
}

// MatchInTopSubdirectories lists every entry of parentDirectory and, treating
// each as a directory without checking, returns the joined paths of its entries
// ending with fileName. Only those two levels are searched. Entries that cannot
// be listed contribute nothing; the error is always nil.
func (h *Helpers) MatchInTopSubdirectories(parentDirectory, fileName string) ([]string, error) {
	results := make([]string, 0)

	h.forEachEntry(parentDirectory, func(entry string) {
		subdirectory := h.FS.Join(parentDirectory, entry)

		h.forEachEntry(subdirectory, func(inner string) {
			if strings.HasSuffix(inner, fileName) {
				results = append(results, h.FS.Join(subdirectory, inner))
			}
		})
	})

	return results, nil
}

// forEachEntry calls fn with each entry of directory, in listing order.
func (h *Helpers) forEachEntry(directory string, fn func(entry string)) {
	listing := h.FS.List(directory)

	defer func() {
		_ = listing.Close()
	}()

	for listing.HasNextEntry() {
		fn(listing.NextEntry())
	}

	if err := listing.Err(); err != nil {
		h.log.Debug("skipping %s: %v", directory, err)
	}
}
