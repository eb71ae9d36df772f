package shared

import (
	"fmt"
	"strings"

	"github.com/joe/file-helpers/pkg/errors"
)

// RenderActionableError renders err as an "Error:" line followed by the
// enricher's suggestions. path is the path the failed operation was given.
func RenderActionableError(err error, path string, maxWidth int) string {
	if err == nil {
		return ""
	}

	enriched := errors.NewEnricher().Enrich(err, path)

	errMsg := enriched.Error()
	if maxWidth > EllipsisLength && len(errMsg) > maxWidth {
		errMsg = errMsg[:maxWidth-EllipsisLength] + "..."
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "%s %s\n", ErrorStyle().Render("Error:"), errMsg)

	suggestions := errors.FormatSuggestions(enriched)
	if suggestions != "" {
		fmt.Fprintf(&builder, "%s\n", suggestions)
	}

	return builder.String()
}
