//go:build !windows

package filehelpers

// Text and binary modes are identical outside Windows.

func fromNativeNewlines(data []byte) []byte {
	return data
}

func toNativeNewlines(data []byte) []byte {
	return data
}
