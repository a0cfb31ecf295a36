package combine

import (
	"errors"
	"fmt"
)

// FileContent holds the rendered section of a single file.
type FileContent struct {
	Path    string // The file path
	Content string // Header plus the raw file content
}

// Result is the assembled snapshot.
type Result struct {
	Text        string           // Full text handed to the output destination.
	Directories int              // Included directories.
	Files       int              // Files whose content made it into Text.
	Skipped     []*FileReadError // Eligible files left out because they could not be used.
}

var (
	ErrBinaryFile   = errors.New("binary content")
	ErrInvalidUTF8  = errors.New("not valid UTF-8")
	ErrFileTooLarge = errors.New("file exceeds size limit")
)

// FileReadError reports an eligible file that was left out of the snapshot.
// It never aborts a run.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
