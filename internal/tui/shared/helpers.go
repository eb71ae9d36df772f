package shared

import "fmt"

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// TruncatePath shortens path to at most maxWidth runes, keeping its tail.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if maxWidth <= EllipsisLength || len(runes) <= maxWidth {
		return path
	}

	return "..." + string(runes[len(runes)-(maxWidth-EllipsisLength):])
}
