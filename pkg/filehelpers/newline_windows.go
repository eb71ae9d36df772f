//go:build windows

package filehelpers

import "bytes"

// fromNativeNewlines converts CRLF line endings to LF, as a text-mode read does.
func fromNativeNewlines(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

// toNativeNewlines converts LF line endings to CRLF, as a text-mode write does.
func toNativeNewlines(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
}
