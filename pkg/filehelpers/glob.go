package filehelpers

import (
	"github.com/bmatcuk/doublestar/v4"

	pkgerrors "github.com/joe/file-helpers/pkg/errors"
)

// MatchPatternInDirectory returns Join(directory, entry) for every entry of
// directory whose name matches pattern, a doublestar glob such as
// "*.{json,yaml}" or "img_[0-9]*". Only entry names are matched, so "/" never
// appears in the subject.
//
// Returns InvalidArgument if pattern is malformed. A directory that cannot be
// listed yields no matches.
func (h *Helpers) MatchPatternInDirectory(directory, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, pkgerrors.NewFileError(pkgerrors.KindInvalidArgument, "match pattern", directory,
			"invalid pattern "+pattern, doublestar.ErrBadPattern)
	}

	results := make([]string, 0)

	h.forEachEntry(directory, func(entry string) {
		// The pattern was validated above, so Match cannot fail.
		if matched, _ := doublestar.Match(pattern, entry); matched {
			results = append(results, h.FS.Join(directory, entry))
		}
	})

	return results, nil
}
