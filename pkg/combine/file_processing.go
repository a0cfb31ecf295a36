package combine

import (
	"fmt"
	"os"
	"unicode/utf8"

	"dirclip/pkg/selector"

	"go.uber.org/zap"
)

const (
	directoryHeader = "\n=== Directory: %s ===\n"
	fileHeader      = "\n=== File: %s ===\n"
)

// ProcessSingleFile reads a selected file and renders its section. Files that
// are too large, binary, not UTF-8 text, or unreadable yield a *FileReadError.
func ProcessSingleFile(file selector.File, maxFileSizeKB int, logger *zap.Logger) (FileContent, error) {
	logger.Debug("Processing file", zap.String("filePath", file.Path))

	if maxFileSizeKB > 0 && file.Size > int64(maxFileSizeKB)*1024 {
		return FileContent{}, &FileReadError{Path: file.Path, Err: fmt.Errorf("%w (%d bytes > %d KB)", ErrFileTooLarge, file.Size, maxFileSizeKB)}
	}

	fileBytes, err := os.ReadFile(file.Path)
	if err != nil {
		return FileContent{}, &FileReadError{Path: file.Path, Err: err}
	}
	if isBinaryContent(fileBytes) {
		return FileContent{}, &FileReadError{Path: file.Path, Err: ErrBinaryFile}
	}
	if !utf8.Valid(fileBytes) {
		return FileContent{}, &FileReadError{Path: file.Path, Err: ErrInvalidUTF8}
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", file.Path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return FileContent{
		Path:    file.Path,
		Content: fmt.Sprintf(fileHeader, file.Path) + string(fileBytes) + "\n",
	}, nil
}
