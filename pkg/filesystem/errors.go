package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

// IsPermission reports whether err is an access-denied failure.
//
// Native errors are classified by their errno so that only EACCES (or
// ERROR_ACCESS_DENIED on Windows) counts; EPERM and friends do not. Errors
// without an errno (SFTP status errors, the in-memory mock) fall back to
// fs.ErrPermission.
func IsPermission(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return isAccessDenied(errno)
	}

	return errors.Is(err, fs.ErrPermission)
}
