package filehelpers

import (
	"os"
	"sort"
	"strings"

	"github.com/kr/fs"

	"github.com/joe/file-helpers/pkg/filesystem"
)

// FindRecursively walks the tree rooted at root and returns the paths of all
// non-directory entries whose names end with suffix, in lexical walk order.
// Symbolic links are reported but not followed. Subtrees that cannot be read
// are skipped; the error is always nil.
func (h *Helpers) FindRecursively(root, suffix string) ([]string, error) {
	results := make([]string, 0)

	walker := fs.WalkFS(root, walkAdapter{fsys: h.FS})
	for walker.Step() {
		if err := walker.Err(); err != nil {
			h.log.Debug("skipping %s: %v", walker.Path(), err)
			continue
		}

		info := walker.Stat()
		if !info.IsDir() && strings.HasSuffix(info.Name(), suffix) {
			results = append(results, walker.Path())
		}
	}

	return results, nil
}

// walkAdapter exposes a filesystem.FileSystem as the fs.FileSystem the walker
// consumes. Directory contents come from a listing plus one Lstat per entry.
type walkAdapter struct {
	fsys filesystem.FileSystem
}

func (a walkAdapter) Join(elem ...string) string {
	return a.fsys.Join(elem...)
}

func (a walkAdapter) Lstat(name string) (os.FileInfo, error) {
	return a.fsys.Lstat(name) //nolint:wrapcheck // already wrapped by the file system
}

// ReadDir returns the entries of dirname sorted by name. Entries that vanish
// between listing and Lstat are left out.
func (a walkAdapter) ReadDir(dirname string) ([]os.FileInfo, error) {
	listing := a.fsys.List(dirname)

	defer func() {
		_ = listing.Close()
	}()

	infos := make([]os.FileInfo, 0)

	for listing.HasNextEntry() {
		info, err := a.fsys.Lstat(a.fsys.Join(dirname, listing.NextEntry()))
		if err != nil {
			continue
		}

		infos = append(infos, info)
	}

	if err := listing.Err(); err != nil {
		return nil, err //nolint:wrapcheck // listing errors already name the directory
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	return infos, nil
}
