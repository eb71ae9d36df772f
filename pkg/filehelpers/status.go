package filehelpers

import (
	"fmt"

	pkgerrors "github.com/joe/file-helpers/pkg/errors"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// Exported constants.
const (
	// MaxPathLength is the longest path, in bytes, RecursivelyCreateDir accepts.
	MaxPathLength = 4096
	// MaxDepth is the most missing segments RecursivelyCreateDir will create.
	MaxDepth = 256
)

// Exists returns nil if path can be stat'ed. A permission failure is reported
// as PermissionDenied; every other failure, including absence, as NotFound.
func (h *Helpers) Exists(path string) error {
	_, err := h.FS.Stat(path)
	if err == nil {
		return nil
	}

	if filesystem.IsPermission(err) {
		return pkgerrors.NewFileError(pkgerrors.KindPermissionDenied, "exists", path, "insufficient permissions", err)
	}

	return pkgerrors.NewFileError(pkgerrors.KindNotFound, "exists", path, "the path does not exist", err)
}

// RecursivelyCreateDir creates path and any missing parents with
// filesystem.DirPermissions. An empty or existing path is a no-op.
//
// Returns PermissionDenied if a mkdir is refused, Unavailable for any other
// mkdir failure, and InvalidArgument for paths longer than MaxPathLength or
// needing more than MaxDepth directories.
func (h *Helpers) RecursivelyCreateDir(path string) error {
	if len(path) > MaxPathLength {
		return pkgerrors.NewFileError(pkgerrors.KindInvalidArgument, "mkdir", "",
			fmt.Sprintf("path is longer than %d bytes", MaxPathLength), nil)
	}

	return h.createDir(path, 0)
}

func (h *Helpers) createDir(path string, depth int) error {
	if path == "" || h.Exists(path) == nil {
		return nil
	}

	if depth >= MaxDepth {
		return pkgerrors.NewFileError(pkgerrors.KindInvalidArgument, "mkdir", path,
			fmt.Sprintf("more than %d directories to create", MaxDepth), nil)
	}

	parent, _ := h.FS.Split(path)
	if parent == path {
		// A root that does not exist cannot be created.
		return pkgerrors.NewFileError(pkgerrors.KindUnavailable, "mkdir", path, "failed to create directory", nil)
	}

	if err := h.createDir(parent, depth+1); err != nil {
		return err
	}

	err := h.FS.Mkdir(path)
	if err == nil {
		h.log.Debug("created directory %s", path)
		return nil
	}

	if filesystem.IsPermission(err) {
		return pkgerrors.NewFileError(pkgerrors.KindPermissionDenied, "mkdir", path, "insufficient permissions", err)
	}

	// Another creator may have won the race.
	if h.Exists(path) == nil {
		return nil
	}

	return pkgerrors.NewFileError(pkgerrors.KindUnavailable, "mkdir", path, "failed to create directory", err)
}
