//go:build unix

package filesystem

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func isAccessDenied(errno syscall.Errno) bool {
	return errno == unix.EACCES
}
