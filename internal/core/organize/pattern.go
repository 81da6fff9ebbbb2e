package organize

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"libshelf/internal/domain"
)

// NewMatcher compiles a case-insensitive name matcher. useRegex selects
// regular-expression search semantics (a match anywhere in the name);
// otherwise the pattern is a glob with * ? and [...] wildcards. A pattern
// that does not compile returns domain.ErrInvalidPattern.
func NewMatcher(pattern string, useRegex bool) (func(name string) bool, error) {
	if useRegex {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
		}
		return re.MatchString, nil
	}

	lowered := strings.ToLower(pattern)
	// Probe once so malformed globs surface here, not per name.
	if _, err := path.Match(lowered, ""); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}
	return func(name string) bool {
		matched, err := path.Match(lowered, strings.ToLower(name))
		return err == nil && matched
	}, nil
}
