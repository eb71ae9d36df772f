// Package errors provides the structured error taxonomy of the file helpers and
// turns those errors into actionable messages for people at a terminal.
//
// Library operations return *FileError values classified by Kind:
//
//	err := filehelpers.Exists("/restricted/dir")
//	if errors.IsPermissionDenied(err) {
//	    // ...
//	}
//
// At the CLI boundary an Enricher attaches a category and suggestions:
//
//	enricher := errors.NewEnricher()
//	actionable := enricher.Enrich(err, "/restricted/dir")
//	fmt.Println(actionable.Error())
//	fmt.Println(errors.FormatSuggestions(actionable))
//
// Errors that are not FileErrors (SFTP transport failures, flag errors) are
// categorized by matching well-known fragments of their message, and the
// affected path is extracted from the message when the caller has none.
package errors

import "strings"

// Exported constants.
const (
	CategoryArgument   ErrorCategory = "argument"
	CategoryCreate     ErrorCategory = "create"
	CategoryDiskSpace  ErrorCategory = "disk_space"
	CategoryIO         ErrorCategory = "io"
	CategoryNetwork    ErrorCategory = "network"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// CategoryForKind maps a FileError kind onto the category used for suggestions.
func CategoryForKind(kind Kind) ErrorCategory {
	switch kind {
	case KindNotFound:
		return CategoryPath
	case KindInvalidArgument:
		return CategoryArgument
	case KindPermissionDenied:
		return CategoryPermission
	case KindIOError:
		return CategoryIO
	case KindUnavailable:
		return CategoryCreate
	case KindUnknown:
		return CategoryUnknown
	default:
		return CategoryUnknown
	}
}

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
