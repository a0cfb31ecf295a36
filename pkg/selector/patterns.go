package selector

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// NameFilter matches file names against a shell glob.
type NameFilter struct {
	pattern string
}

// NewNameFilter validates pattern. An empty pattern matches every name.
func NewNameFilter(pattern string) (*NameFilter, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, pattern)
	}
	return &NameFilter{pattern: pattern}, nil
}

// Match reports whether name satisfies the pattern.
func (f *NameFilter) Match(name string) bool {
	if f.pattern == "" {
		return true
	}
	ok, err := doublestar.Match(f.pattern, name)
	return err == nil && ok
}

// Pattern returns the glob the filter was built from.
func (f *NameFilter) Pattern() string {
	return f.pattern
}
