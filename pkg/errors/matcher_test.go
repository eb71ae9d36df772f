package errors_test

import (
	"testing"

	"github.com/joe/file-helpers/pkg/errors"
)

func TestPatternMatcher_Match(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{"uppercase permission denied", "PERMISSION DENIED", errors.CategoryPermission},
		{"windows access denied", "CreateDirectory C:\\x: Access is denied.", errors.CategoryPermission},
		{"mixed case no space left", "No Space Left On Device", errors.CategoryDiskSpace},
		{"missing file", "open /x: no such file or directory", errors.CategoryPath},
		{"not a directory", "mkdir /a/b: not a directory", errors.CategoryPath},
		{"ssh failure", "SSH connection failed: dial tcp: connection refused", errors.CategoryNetwork},
		{"timeout is network", "read tcp 1.2.3.4:22: i/o timeout", errors.CategoryNetwork},
		{"short write", "short write", errors.CategoryIO},
		{"input/output error", "read /dev/sdb: input/output error", errors.CategoryIO},
		{"reading a directory", "read /tmp: is a directory", errors.CategoryIO},
		{"unknown", "the flux capacitor overheated", errors.CategoryUnknown},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_PermissionWinsOverPath(t *testing.T) {
	t.Parallel()

	matcher := errors.NewPatternMatcher()

	category := matcher.Match("open /etc/shadow: permission denied (no such file or directory was not the cause)")
	if category != errors.CategoryPermission {
		t.Errorf("expected permission category to take precedence, got %q", category)
	}
}
