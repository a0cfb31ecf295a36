// Package combine renders a selection into a single text snapshot and hands
// it to the clipboard, stdout, or a file.
package combine

import (
	"errors"
	"fmt"
	"strings"

	"dirclip/pkg/selector"

	"go.uber.org/zap"
)

// Build concatenates the listing of every included directory and the content
// of its eligible files, in selection order. Files that cannot be used are
// logged, recorded in Result.Skipped and left out together with their header.
func Build(sel *selector.Selection, opts BuildOptions, logger *zap.Logger) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	var out strings.Builder
	result := &Result{Directories: len(sel.Directories)}

	if opts.Tree && !sel.Empty() {
		out.WriteString(GenerateTree(sel))
	}

	for _, dir := range sel.Directories {
		fmt.Fprintf(&out, directoryHeader, dir.Path)
		out.WriteString(dir.Listing)

		for _, file := range dir.Files {
			content, err := ProcessSingleFile(file, opts.MaxFileSizeKB, logger)
			if err != nil {
				var readErr *FileReadError
				if !errors.As(err, &readErr) {
					readErr = &FileReadError{Path: file.Path, Err: err}
				}
				logger.Warn("Skipping file", zap.String("filePath", file.Path), zap.Error(readErr.Err))
				result.Skipped = append(result.Skipped, readErr)
				continue
			}
			out.WriteString(content.Content)
			result.Files++
		}
	}

	result.Text = out.String()
	logger.Debug("Built snapshot",
		zap.Int("directories", result.Directories),
		zap.Int("files", result.Files),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("bytes", len(result.Text)))
	return result
}
