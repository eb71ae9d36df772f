package errors

import (
	"errors"
	"fmt"
)

// Exported constants.
const (
	KindUnknown Kind = iota
	// KindNotFound: open-for-read failed, or a stat failed for a reason other than permissions.
	KindNotFound
	// KindInvalidArgument: open-for-write failed, or the request itself was malformed.
	KindInvalidArgument
	// KindPermissionDenied: the OS refused access on stat or directory creation.
	KindPermissionDenied
	// KindIOError: a read or write failed after the file was opened.
	KindIOError
	// KindUnavailable: directory creation failed for a reason other than permissions.
	KindUnavailable
)

// FileError is the structured error returned by every file helper operation.
type FileError struct {
	Kind    Kind
	Op      string
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Path != "" {
		msg = fmt.Sprintf("%s %s: %s", e.Op, e.Path, msg)
	} else if e.Op != "" {
		msg = e.Op + ": " + msg
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is reports whether target is a *FileError of the same kind.
// This lets callers write errors.Is(err, &FileError{Kind: KindNotFound}).
func (e *FileError) Is(target error) bool {
	var other *FileError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Kind classifies a FileError.
type Kind int

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidArgument:
		return "invalid argument"
	case KindPermissionDenied:
		return "permission denied"
	case KindIOError:
		return "i/o error"
	case KindUnavailable:
		return "unavailable"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// IsInvalidArgument reports whether err carries KindInvalidArgument.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsIOError reports whether err carries KindIOError.
func IsIOError(err error) bool { return KindOf(err) == KindIOError }

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsPermissionDenied reports whether err carries KindPermissionDenied.
func IsPermissionDenied(err error) bool { return KindOf(err) == KindPermissionDenied }

// IsUnavailable reports whether err carries KindUnavailable.
func IsUnavailable(err error) bool { return KindOf(err) == KindUnavailable }

// KindOf returns the kind of the first FileError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind
	}

	return KindUnknown
}

// NewFileError builds a FileError.
func NewFileError(kind Kind, op, path, message string, cause error) *FileError {
	return &FileError{
		Kind:    kind,
		Op:      op,
		Path:    path,
		Message: message,
		Err:     cause,
	}
}
