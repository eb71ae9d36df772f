package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryDiskSpace:
		return g.generateDiskSpaceSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryCreate:
		return g.generateCreateSuggestions(affectedPath)
	case CategoryIO:
		return g.generateIOSuggestions(affectedPath)
	case CategoryArgument:
		return g.generateArgumentSuggestions(affectedPath)
	case CategoryNetwork:
		return g.generateNetworkSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateArgumentSuggestions(path string) []string {
	suggestions := []string{
		"Check the arguments passed to the command",
	}

	if path != "" {
		suggestions = append(suggestions,
			"Ensure the parent directory of "+path+" exists and is writable",
			"Make sure "+path+" is not an existing directory")
	} else {
		suggestions = append(suggestions, "Ensure the target's parent directory exists and is writable")
	}

	suggestions = append(suggestions, "Quote glob patterns so the shell does not expand them")

	return suggestions
}

func (g *suggestionGenerator) generateCreateSuggestions(path string) []string {
	suggestions := []string{
		"Check whether a file already occupies one of the path segments",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect the parent with 'ls -la %s/..'", path))
	}

	suggestions = append(suggestions,
		"Verify the file system is mounted read-write",
		"Shorten the path if it exceeds the platform's limits")

	return suggestions
}

func (g *suggestionGenerator) generateDiskSpaceSuggestions(path string) []string {
	suggestions := []string{
		"Free up space on the destination device",
		"Check available space with 'df -h'",
		"Remove unnecessary files or move files to a different location",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify disk usage for the filesystem containing "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateIOSuggestions(_ string) []string {
	return []string{
		"Check if there is sufficient disk space on the device",
		"Verify the storage media is functioning correctly",
		"Try the operation again - this may be a transient I/O error",
		"Check system logs for hardware issues",
	}
}

func (g *suggestionGenerator) generateNetworkSuggestions(path string) []string {
	suggestions := []string{
		"Verify the host is reachable and the SSH port is open",
		"Make sure an SSH agent is running or a default key exists in ~/.ssh",
	}

	if path != "" {
		suggestions = append(suggestions, "Check that the remote path is correct: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read/write permissions for the files and directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
		"Ensure sufficient disk space is available",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
