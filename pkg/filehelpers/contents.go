package filehelpers

import (
	"errors"
	"io"
	"syscall"

	pkgerrors "github.com/joe/file-helpers/pkg/errors"
)

// ReadChunkSize is how many bytes GetContents requests per read.
const ReadChunkSize = 4096

// GetContents reads the whole file at path. In text mode (binaryMode false)
// platform line endings are translated to "\n".
//
// Returns a NotFound error if the file cannot be opened, and an IOError if a
// read fails before any bytes of the chunk arrived.
func (h *Helpers) GetContents(path string, binaryMode bool) ([]byte, error) {
	file, err := h.FS.Open(path)
	if err != nil {
		return nil, pkgerrors.NewFileError(pkgerrors.KindNotFound, "get contents", path, "can't find file", err)
	}

	defer func() {
		_ = file.Close()
	}()

	contents := make([]byte, 0, ReadChunkSize)
	buf := make([]byte, ReadChunkSize)

	for {
		n, err := file.Read(buf)
		contents = append(contents, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil && n == 0 {
			return nil, pkgerrors.NewFileError(pkgerrors.KindIOError, "get contents", path, "error while reading file", err)
		}
	}

	if !binaryMode {
		contents = fromNativeNewlines(contents)
	}

	h.log.Debug("read %d bytes from %s", len(contents), path)

	return contents, nil
}

// SetContents creates or truncates the file at path and writes content to it
// in text mode.
//
// Returns an InvalidArgument error if the file cannot be opened for writing,
// and an IOError if the write or the close fails.
func (h *Helpers) SetContents(path string, content []byte) error {
	file, err := h.FS.Create(path)
	if err != nil {
		return pkgerrors.NewFileError(pkgerrors.KindInvalidArgument, "set contents", path, "can't open file", err)
	}

	_, writeErr := file.Write(toNativeNewlines(content))

	// The description is taken from the write result before closing, so a
	// failure seen only at close reports errno 0.
	description := describeErrno(writeErr)

	closeErr := file.Close()
	if closeErr != nil || writeErr != nil {
		return pkgerrors.NewFileError(pkgerrors.KindIOError, "set contents", path,
			"error while writing file. Error message: "+description, errors.Join(writeErr, closeErr))
	}

	h.log.Debug("wrote %d bytes to %s", len(content), path)

	return nil
}

// describeErrno returns the OS description of the errno carried by err, the
// text of err when it carries none, or the description of errno 0 for nil.
func describeErrno(err error) string {
	if err == nil {
		return syscall.Errno(0).Error()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}

	return err.Error()
}
