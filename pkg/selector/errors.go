package selector

import "errors"

var (
	// ErrInvalidPath is returned when the base directory does not exist, is
	// not a directory, or cannot be read.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidFilter is returned when the filter pattern does not parse.
	ErrInvalidFilter = errors.New("invalid filter")
)
