//go:build !unix && !windows

package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

func isAccessDenied(errno syscall.Errno) bool {
	return errors.Is(errno, fs.ErrPermission)
}
