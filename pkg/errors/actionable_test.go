package errors_test

import (
	"testing"

	"github.com/joe/file-helpers/pkg/errors"
)

func TestActionableError_FormatSuggestionsWithEmptySuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"unknown error",
		errors.CategoryUnknown,
		[]string{},
		"/path",
	)

	formatted := errors.FormatSuggestions(err)

	if formatted != "" {
		t.Errorf("expected empty string for no suggestions, got %q", formatted)
	}
}

func TestActionableError_FormatSuggestionsWithMultipleSuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"permission denied",
		errors.CategoryPermission,
		[]string{
			"Check permissions with 'ls -la'",
			"Ensure you have read/write access",
			"Try running with sudo",
		},
		"/path/to/file",
	)

	formatted := errors.FormatSuggestions(err)

	expected := "  • Check permissions with 'ls -la'\n  • Ensure you have read/write access\n  • Try running with sudo"
	if formatted != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, formatted)
	}
}

func TestActionableError_FormatSuggestionsWithNil(t *testing.T) {
	t.Parallel()

	if formatted := errors.FormatSuggestions(nil); formatted != "" {
		t.Errorf("expected empty string for nil error, got %q", formatted)
	}
}

func TestActionableError_FormatSuggestionsWithPlainFileError(t *testing.T) {
	t.Parallel()

	err := errors.NewFileError(errors.KindNotFound, "read", "/x", "", nil)

	if formatted := errors.FormatSuggestions(err); formatted != "" {
		t.Errorf("expected empty string for a non-actionable error, got %q", formatted)
	}
}

func TestActionableError_Accessors(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError("boom", errors.CategoryIO, []string{"retry"}, "/data")

	if err.Error() != "boom" || err.OriginalError() != "boom" {
		t.Errorf("unexpected message: %q / %q", err.Error(), err.OriginalError())
	}
	if err.Category() != errors.CategoryIO {
		t.Errorf("expected category %q, got %q", errors.CategoryIO, err.Category())
	}
	if err.AffectedPath() != "/data" {
		t.Errorf("expected path /data, got %q", err.AffectedPath())
	}
	if len(err.Suggestions()) != 1 {
		t.Errorf("expected one suggestion, got %v", err.Suggestions())
	}
}

func TestCategoryForKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     errors.Kind
		expected errors.ErrorCategory
	}{
		{errors.KindNotFound, errors.CategoryPath},
		{errors.KindInvalidArgument, errors.CategoryArgument},
		{errors.KindPermissionDenied, errors.CategoryPermission},
		{errors.KindIOError, errors.CategoryIO},
		{errors.KindUnavailable, errors.CategoryCreate},
		{errors.KindUnknown, errors.CategoryUnknown},
	}

	for _, tt := range tests {
		if got := errors.CategoryForKind(tt.kind); got != tt.expected {
			t.Errorf("CategoryForKind(%v) = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
