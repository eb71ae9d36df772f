//go:build windows

package filesystem

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func isAccessDenied(errno syscall.Errno) bool {
	return errno == windows.ERROR_ACCESS_DENIED
}
